package pos

import (
	"fmt"
	"strconv"
)

// Orders file columns:
//
//	orderId,name,contactNumber,"itemsOrdered",totalItems,totalAmount,
//	paymentMethod,"orderDateTime",orderStatus,"referenceNumber","cashOrTimestamp"
//
// Four historical field counts are accepted. Optional columns right-shift
// out: the contact number is present at 9 and 11 tokens, the
// reference/timestamp pair at 10 and 11.
//
//	11: full modern row
//	10: no contact number
//	 9: no reference/timestamp (pre digital-payment data)
//	 8: neither
//
// The file has no payment-status column; loads back-fill it from the
// order status (Completed→Paid, Cancelled→Refunded, else Unpaid).
const ordersHeader = `# orderId,name,contactNumber,"itemsOrdered",totalItems,totalAmount,paymentMethod,"orderDateTime",orderStatus,"referenceNumber","cashOrTimestamp"`

// Sales file columns:
//
//	saleId,orderId,customerName,contactNumber,"itemsSold",totalItems,
//	saleAmount,paymentMethod,"saleDateTime","paymentReference",cashReceived
const salesHeader = `# saleId,orderId,customerName,contactNumber,"itemsSold",totalItems,saleAmount,paymentMethod,"saleDateTime","paymentReference",cashReceived`

// orderFields flattens an order into its 11 wire columns.
func orderFields(o *Order) []string {
	reference, cashOrTimestamp := wireDetails(o.Details)
	return []string{
		o.ID,
		o.CustomerName,
		o.ContactNumber,
		EncodeItems(o.Items),
		strconv.Itoa(o.TotalItems),
		o.Total.String(),
		string(o.Method),
		o.OrderedAt,
		string(o.Status),
		reference,
		cashOrTimestamp,
	}
}

// encodeOrder writes one orders-file line. The quoted columns are the
// free-text ones: items, date/time, reference, timestamp.
func encodeOrder(o *Order) string {
	return EncodeLine(orderFields(o), 3, 7, 9, 10)
}

// decodeOrder rebuilds an order from 8 to 11 wire columns.
func decodeOrder(fields []string) (*Order, error) {
	if len(fields) < 8 || len(fields) > 11 {
		return nil, fmt.Errorf("expected 8 to 11 fields, got %d", len(fields))
	}
	hasContact := len(fields) == 9 || len(fields) == 11
	hasDigital := len(fields) >= 10

	next := func(i *int) string { f := fields[*i]; *i++; return f }
	i := 0
	o := &Order{ID: next(&i), CustomerName: next(&i)}
	if hasContact {
		o.ContactNumber = next(&i)
	}
	o.Items = ParseItems(next(&i))

	totalItems, err := strconv.Atoi(next(&i))
	if err != nil {
		totalItems = TotalQuantity(o.Items)
	}
	o.TotalItems = totalItems

	total, err := ParseMoney(next(&i))
	if err != nil {
		return nil, fmt.Errorf("bad total amount: %w", err)
	}
	o.Total = total

	method, err := ParsePaymentMethod(next(&i))
	if err != nil {
		return nil, err
	}
	o.Method = method
	o.OrderedAt = next(&i)

	status, err := ParseOrderStatus(next(&i))
	if err != nil {
		return nil, err
	}
	o.Status = status
	o.Payment = legacyPaymentStatus(status)

	var reference, cashOrTimestamp string
	if hasDigital {
		reference = next(&i)
		cashOrTimestamp = next(&i)
	}
	o.Details = paymentDetailsOf(method, reference, cashOrTimestamp)
	return o, nil
}

// saleFields flattens a sale record into its 11 wire columns.
func saleFields(r SaleRecord) []string {
	return []string{
		r.ID,
		r.OrderID,
		r.CustomerName,
		r.ContactNumber,
		EncodeItems(r.Items),
		strconv.Itoa(r.TotalItems),
		r.Amount.String(),
		string(r.Method),
		r.SoldAt,
		r.Reference,
		r.CashReceived.StringFixed(2),
	}
}

// encodeSale writes one sales-file line.
func encodeSale(r SaleRecord) string {
	return EncodeLine(saleFields(r), 4, 8, 9)
}

// decodeSale rebuilds a sale record from its 11 wire columns.
func decodeSale(fields []string) (SaleRecord, error) {
	if len(fields) != 11 {
		return SaleRecord{}, fmt.Errorf("expected 11 fields, got %d", len(fields))
	}
	amount, err := ParseMoney(fields[6])
	if err != nil {
		return SaleRecord{}, fmt.Errorf("bad sale amount: %w", err)
	}
	method, err := ParsePaymentMethod(fields[7])
	if err != nil {
		return SaleRecord{}, err
	}
	items := ParseItems(fields[4])
	totalItems, err := strconv.Atoi(fields[5])
	if err != nil {
		totalItems = TotalQuantity(items)
	}
	return SaleRecord{
		ID:            fields[0],
		OrderID:       fields[1],
		CustomerName:  fields[2],
		ContactNumber: fields[3],
		Items:         items,
		TotalItems:    totalItems,
		Amount:        amount,
		Method:        method,
		SoldAt:        fields[8],
		Reference:     fields[9],
		CashReceived:  parseAmountOrZero(fields[10]),
	}, nil
}
