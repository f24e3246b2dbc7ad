package shop

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// AddressInput is the shipping form as typed by the shopper.
type AddressInput struct {
	Name     string `field:"name" label:"name" validate:"required"`
	Street1  string `field:"street1" label:"street 1" validate:"required"`
	Street2  string `field:"street2" label:"street 2"`
	City     string `field:"city" label:"city" validate:"required"`
	Province string `field:"province" label:"state" validate:"required"`
	Country  string `field:"country" label:"country" validate:"required"`
	Phone    string `field:"phone" label:"phone"`
	Zip      string `field:"zip" label:"postal code" validate:"required,zip"`
}

// AddressField describes one input of the shipping form.
type AddressField struct {
	Key      string
	Label    string
	Required bool
}

var (
	addressOnce      sync.Once
	addressValidator *validator.Validate
	addressFields    []AddressField

	zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

const zipMessage = "Enter a valid ZIP code (e.g. 12345 or 12345-6789)"

func addressSetup() {
	addressOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("field")
		})
		_ = v.RegisterValidation("zip", func(fl validator.FieldLevel) bool {
			return zipPattern.MatchString(fl.Field().String())
		})
		addressValidator = v

		t := reflect.TypeOf((*AddressInput)(nil)).Elem()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			addressFields = append(addressFields, AddressField{
				Key:      f.Tag.Get("field"),
				Label:    f.Tag.Get("label"),
				Required: strings.Contains(f.Tag.Get("validate"), "required"),
			})
		}
	})
}

// AddressFields lists the form fields in display order.
func AddressFields() []AddressField {
	addressSetup()
	return addressFields
}

// Get returns the value of the field with the given key.
func (in AddressInput) Get(key string) string {
	if p := in.field(key); p != nil {
		return *p
	}
	return ""
}

// Set returns a copy of in with the field key set to value.
func (in AddressInput) Set(key, value string) AddressInput {
	if p := in.field(key); p != nil {
		*p = value
	}
	return in
}

func (in *AddressInput) field(key string) *string {
	switch key {
	case "name":
		return &in.Name
	case "street1":
		return &in.Street1
	case "street2":
		return &in.Street2
	case "city":
		return &in.City
	case "province":
		return &in.Province
	case "country":
		return &in.Country
	case "phone":
		return &in.Phone
	case "zip":
		return &in.Zip
	}
	return nil
}

// Validate checks the input and returns the message per failing field key.
// A nil map means the input is valid.
func (in AddressInput) Validate() map[string]string {
	addressSetup()
	err := addressValidator.Struct(in)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return map[string]string{"": err.Error()}
	}

	labels := make(map[string]string, len(addressFields))
	for _, f := range addressFields {
		labels[f.Key] = f.Label
	}

	out := make(map[string]string, len(ves))
	for _, fe := range ves {
		key := fe.Field()
		switch fe.Tag() {
		case "required":
			out[key] = labels[key] + " is required"
		case "zip":
			out[key] = zipMessage
		default:
			out[key] = "invalid value"
		}
	}
	return out
}

// Address converts the input into a saved address with the given ID.
func (in AddressInput) Address(id string) Address {
	return Address{
		ID:       id,
		Name:     in.Name,
		Street1:  in.Street1,
		Street2:  in.Street2,
		City:     in.City,
		Province: in.Province,
		Country:  in.Country,
		Zip:      in.Zip,
		Phone:    in.Phone,
	}
}
