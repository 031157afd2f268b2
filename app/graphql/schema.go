// Package graphql exposes a read-only query API over the catalog and the
// order log, for admin dashboards that want one round-trip instead of
// several REST calls.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/lunarosa/shop/app/repositories"
	"github.com/lunarosa/shop/app/services"
	"github.com/lunarosa/shop/pkg/response"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":        &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"stock":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"category":     &graphql.Field{Type: graphql.String},
		"discount":     &graphql.Field{Type: graphql.Int},
		"description":  &graphql.Field{Type: graphql.String},
		"image":        &graphql.Field{Type: graphql.String},
		"isBestSeller": &graphql.Field{Type: graphql.Boolean},
	},
})

var cartItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"discount": &graphql.Field{Type: graphql.Int},
		"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":         &graphql.Field{Type: graphql.String},
		"address":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"paymentMethod": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"notes":         &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"date":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"customer": &graphql.Field{Type: customerType},
		"items":    &graphql.Field{Type: graphql.NewList(cartItemType)},
		"total":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// NewSchema builds the root query over the given services.
func NewSchema(catalog *services.CatalogService, orders *repositories.OrderRepository) (graphql.Schema, error) {
	root := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type:        graphql.NewList(productType),
				Description: "In-stock products, optionally filtered by search term and category.",
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					search, _ := p.Args["search"].(string)
					category, _ := p.Args["category"].(string)
					return catalog.Browse(p.Context, search, category)
				},
			},
			"categories": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "Distinct product categories in catalog order.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.Categories(p.Context)
				},
			},
			"orders": &graphql.Field{
				Type:        graphql.NewList(orderType),
				Description: "The full order log, oldest first.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orders.All(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: root})
}

// Handler serves POSTed queries against the schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
