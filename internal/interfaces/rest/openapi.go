package rest

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// Schema names of request bodies.
const (
	SchemaBalanceRequest             = "BalanceRequest"
	SchemaRedeemRequest              = "RedeemRequest"
	SchemaPaymentModificationRequest = "PaymentModificationRequest"
)

// SchemaValidator checks request bodies against the component schemas of the
// embedded OpenAPI document.
type SchemaValidator struct {
	doc *openapi3.T
}

func NewSchemaValidator(ctx context.Context) (*SchemaValidator, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return &SchemaValidator{doc: doc}, nil
}

// DecodeBody validates raw against the named schema and decodes it into dst.
// Any mismatch is reported as an Invalid domain error.
func (v *SchemaValidator) DecodeBody(schema string, raw []byte, dst any) error {
	ref, ok := v.doc.Components.Schemas[schema]
	if !ok || ref.Value == nil {
		return fmt.Errorf("unknown schema %q", schema)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return domain.NewInvalidError("request body is not valid JSON")
	}

	if err := ref.Value.VisitJSON(generic, openapi3.MultiErrors()); err != nil {
		return domain.NewInvalidError(fmt.Sprintf("request body does not match %s: %s", schema, err.Error()))
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.NewInvalidError("request body could not be decoded")
	}
	return nil
}

// DocsHandler serves the OpenAPI document.
func DocsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openAPIDocument)
	})
}
