package graphql

import (
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// NewHandler parses the schema against the resolver and returns the HTTP
// handler for POST /graphql. Schema/resolver mismatches are programmer
// errors, surfaced at startup by the panic inside MustParseSchema.
func NewHandler(resolver *Resolver) http.Handler {
	schema := graphqlgo.MustParseSchema(Schema, resolver)
	return &relay.Handler{Schema: schema}
}
