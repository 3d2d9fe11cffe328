package handlers

import (
	"fmt"
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// pathParam binds a simple-style path parameter the way generated servers do.
func pathParam(r *http.Request, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", domain.NewInvalidError(fmt.Sprintf("invalid format for parameter %s: %s", name, err.Error()))
	}
	return value, nil
}
