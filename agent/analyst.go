package agent

import (
	"context"

	"github.com/wrapnpack/pos"
	"github.com/wrapnpack/pos/date"
	"github.com/wrapnpack/pos/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewAnalyst builds the sales analyst expert. Its function library reads
// the store, so answers are grounded in the actual ledger instead of the
// model's imagination.
func NewAnalyst(store *pos.Store) *Expert {
	lib := []Function{summaryFunc(store), ordersFunc(store)}

	return &Expert{
		Name: "Analyst",
		Description: `The sales analyst. It reads the outlet's order and sales ledger
		and computes KPI figures, order lists and best sellers.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the sales analyst of a small retail outlet.
			You answer questions about orders, sales, revenue and trends.

			Always ground figures in the tools, never invent numbers.
			Amounts are in Philippine pesos. When the user names a period
			("this week", "last 30 days"...) pass it verbatim to the tools,
			they understand the same names as the report screens.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func summaryFunc(store *pos.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SalesSummary",
			Description: `SalesSummary computes the KPI report for a reporting window:
			order counts, completion rate, revenue, average order value,
			customer retention, growth against the previous window and the
			best selling item.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"window": {
						Type: genai.TypeString,
						Description: `The reporting window: Today, This Week, Last 7 Days,
						Last 14 Days, Last 30 Days, Last 90 Days, This Month or This Year.
						Unknown names fall back to Last 30 Days.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted KPI table for the window.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			window, _ := args["window"].(string)
			if err := store.Refresh(); err != nil {
				return errorResponse(id, "SalesSummary", err)
			}
			r := date.ParseWindow(window).Resolve(date.Today())
			md := renderer.SummaryMarkdown(pos.NewSummary(store.Ledger(), r))
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "SalesSummary",
				Response: map[string]any{"output": md},
			}
		},
	}
}

func ordersFunc(store *pos.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Orders",
			Description: `Orders lists the outlet's orders, optionally filtered by status
			(Pending, In Progress, Completed, Cancelled or All) and by a free-text
			search over order id, customer name and items.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"status": {
						Type:        genai.TypeString,
						Description: "Status filter, defaults to All.",
					},
					"query": {
						Type:        genai.TypeString,
						Description: "Free-text filter over id, customer and items.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the matching orders.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			status, _ := args["status"].(string)
			query, _ := args["query"].(string)
			if status == "" {
				status = pos.StatusAll
			}
			if err := store.Refresh(); err != nil {
				return errorResponse(id, "Orders", err)
			}
			orders := pos.FilterOrders(store.Ledger().Orders(), pos.Filter{Status: status, Query: query})
			pos.SortOrders(orders, pos.ByDateDesc)
			page, pageNo, pages := pos.Paginate(orders, 1, 15)
			md := renderer.OrdersMarkdown(page, pageNo, pages)
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "Orders",
				Response: map[string]any{"output": md},
			}
		},
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}
