package api

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

type requestValidator struct {
	validate *validator.Validate
}

// NewValidator reports validation failures by their json field names. The
// max_pressure tag bounds a raw pressure value by bst.MaxPressureLimit.
func NewValidator() echo.Validator {
	v := validator.New()
	_ = v.RegisterValidation("max_pressure", func(fl validator.FieldLevel) bool {
		return bst.MaxPressureInRange(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i interface{}) error {
	if err := rv.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err.Error())
	}
	return nil
}

type binder struct {
	echo.DefaultBinder
}

// NewBinder binds the request and validates the result.
func NewBinder() echo.Binder {
	return &binder{}
}

func (b *binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return err
	}
	return c.Validate(i)
}

type jsonSerializer struct{}

func NewJSONSerializer() echo.JSONSerializer {
	return jsonSerializer{}
}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed json: "+err.Error()).SetInternal(err)
	}
	return nil
}
