package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/domain/events"
	"varejo_xpto/pkg"
)

var (
	ErrInvalidCardNumber = errors.New("cardNumber must contain 16 digits")
	ErrInvalidExpiry     = errors.New("card expiry is invalid")
	ErrInvalidCVV        = errors.New("cvv must contain 3 or 4 digits")
	ErrInvalidZipCode    = errors.New("zipCode must match NNNNN-NNN")
	ErrInvalidQuantity   = errors.New("item quantity must be a positive integer")
)

var zipCodeRe = regexp.MustCompile(`^\d{5}-?\d{3}$`)

type CustomerDataRequest struct {
	CPF   string `json:"cpf" binding:"required"`
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type ItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type PaymentDataRequest struct {
	CardNumber     string `json:"cardNumber" binding:"required"`
	CardHolderName string `json:"cardHolderName" binding:"required"`
	ExpiryMonth    int    `json:"expiryMonth" binding:"required"`
	ExpiryYear     int    `json:"expiryYear" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
}

type AddressDataRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

// SubmitOrderRequest is the POST /orders payload. Shape presence is enforced
// by binding tags; field-level rules live in Validate, which runs after
// Sanitize.
type SubmitOrderRequest struct {
	CustomerData CustomerDataRequest `json:"customerData" binding:"required"`
	Items        []ItemRequest       `json:"items" binding:"required,min=1,dive"`
	PaymentData  PaymentDataRequest  `json:"paymentData" binding:"required"`
	AddressData  AddressDataRequest  `json:"addressData" binding:"required"`
}

// Sanitize normalizes the payload in place: trims strings, lowercases the
// email, uppercases state/country, strips card spaces and normalizes the zip
// to NNNNN-NNN.
func (r *SubmitOrderRequest) Sanitize() {
	r.CustomerData.CPF = strings.TrimSpace(r.CustomerData.CPF)
	r.CustomerData.Email = strings.ToLower(strings.TrimSpace(r.CustomerData.Email))
	r.CustomerData.Name = strings.TrimSpace(r.CustomerData.Name)

	r.PaymentData.CardNumber = strings.ReplaceAll(strings.TrimSpace(r.PaymentData.CardNumber), " ", "")
	r.PaymentData.CardHolderName = strings.TrimSpace(r.PaymentData.CardHolderName)
	r.PaymentData.CVV = strings.TrimSpace(r.PaymentData.CVV)

	r.AddressData.Street = strings.TrimSpace(r.AddressData.Street)
	r.AddressData.Number = strings.TrimSpace(r.AddressData.Number)
	r.AddressData.Complement = strings.TrimSpace(r.AddressData.Complement)
	r.AddressData.Neighborhood = strings.TrimSpace(r.AddressData.Neighborhood)
	r.AddressData.City = strings.TrimSpace(r.AddressData.City)
	r.AddressData.State = strings.ToUpper(strings.TrimSpace(r.AddressData.State))
	r.AddressData.Country = strings.ToUpper(strings.TrimSpace(r.AddressData.Country))
	r.AddressData.ZipCode = normalizeZipCode(r.AddressData.ZipCode)

	for i := range r.Items {
		r.Items[i].ID = strings.TrimSpace(r.Items[i].ID)
	}
}

// Validate applies the field-level rules. Error messages surface verbatim in
// the 400 response body.
func (r *SubmitOrderRequest) Validate(now time.Time) error {
	if len(pkg.DigitsOnly(r.CustomerData.CPF)) != 11 {
		return errors.New("cpf must contain 11 digits")
	}
	if at := strings.IndexByte(r.CustomerData.Email, '@'); at <= 0 || at == len(r.CustomerData.Email)-1 {
		return errors.New("invalid email")
	}

	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item %s: %w", item.ID, ErrInvalidQuantity)
		}
	}

	card := pkg.DigitsOnly(r.PaymentData.CardNumber)
	if len(card) != 16 || card != r.PaymentData.CardNumber {
		return ErrInvalidCardNumber
	}
	if r.PaymentData.ExpiryMonth < 1 || r.PaymentData.ExpiryMonth > 12 {
		return ErrInvalidExpiry
	}
	year := now.Year()
	if r.PaymentData.ExpiryYear < year || r.PaymentData.ExpiryYear > year+10 {
		return ErrInvalidExpiry
	}
	cvv := pkg.DigitsOnly(r.PaymentData.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || cvv != r.PaymentData.CVV {
		return ErrInvalidCVV
	}

	if !zipCodeRe.MatchString(r.AddressData.ZipCode) {
		return ErrInvalidZipCode
	}
	return nil
}

// ToDomain converts the sanitized request into domain values.
func (r *SubmitOrderRequest) ToDomain() (entities.Customer, entities.CardData, entities.Address, []events.RequestedItem) {
	customer := entities.Customer{
		CPF:   pkg.DigitsOnly(r.CustomerData.CPF),
		Email: r.CustomerData.Email,
		Name:  r.CustomerData.Name,
	}
	card := entities.CardData{
		CardNumber:     r.PaymentData.CardNumber,
		CardHolderName: r.PaymentData.CardHolderName,
		ExpiryMonth:    fmt.Sprintf("%02d", r.PaymentData.ExpiryMonth),
		ExpiryYear:     fmt.Sprintf("%d", r.PaymentData.ExpiryYear),
		CVV:            r.PaymentData.CVV,
	}
	address := entities.Address{
		Street:       r.AddressData.Street,
		Number:       r.AddressData.Number,
		Complement:   r.AddressData.Complement,
		Neighborhood: r.AddressData.Neighborhood,
		City:         r.AddressData.City,
		State:        r.AddressData.State,
		ZipCode:      r.AddressData.ZipCode,
		Country:      r.AddressData.Country,
	}
	items := make([]events.RequestedItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, events.RequestedItem{ID: item.ID, Quantity: item.Quantity})
	}
	return customer, card, address, items
}

func normalizeZipCode(zip string) string {
	digits := pkg.DigitsOnly(strings.TrimSpace(zip))
	if len(digits) == 8 {
		return digits[:5] + "-" + digits[5:]
	}
	return strings.TrimSpace(zip)
}
