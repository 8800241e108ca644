package address

import (
	"strings"

	"shopswift-be/internal/utils"

	"github.com/google/uuid"
)

type Address struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

type CreateAddressInput struct {
	Label   string `json:"label"`
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Owner is who the default address book is built for. A nil owner is a
// guest.
type Owner struct {
	Name    string
	Address string
}

const (
	guestName  = "Sam"
	guestPhone = "+91 8967301777"
)

// Defaults returns the Home and Work entries offered at checkout.
func Defaults(owner *Owner) []Address {
	name, street := guestName, "Park Street, Kolkata"
	homePhone, workPhone := guestPhone, guestPhone

	if owner != nil {
		name = owner.Name
		if owner.Address != "" {
			street = owner.Address
		}
		homePhone, workPhone = "+91 9876543210", "+91 8877665544"
	}

	return []Address{
		{ID: "home", Label: "Home", Name: name, Street: street, City: "Kolkata", Pincode: "700016", Phone: homePhone},
		{ID: "work", Label: "Work", Name: name, Street: "Salt Lake Sector V", City: "Kolkata", Pincode: "700091", Phone: workPhone},
	}
}

// IsDefault reports whether id names one of the entries Defaults builds.
func IsDefault(id string) bool {
	return id == "home" || id == "work"
}

// New validates the input and returns an address with a fresh id.
func New(input CreateAddressInput) (Address, error) {
	in := CreateAddressInput{
		Label:   strings.TrimSpace(input.Label),
		Name:    strings.TrimSpace(input.Name),
		Street:  strings.TrimSpace(input.Street),
		City:    strings.TrimSpace(input.City),
		Pincode: strings.TrimSpace(input.Pincode),
		Phone:   strings.TrimSpace(input.Phone),
	}

	if err := Validate(in); err != nil {
		return Address{}, err
	}

	label := in.Label
	if label == "" {
		label = "Other"
	}

	return Address{
		ID:      uuid.NewString(),
		Label:   label,
		Name:    in.Name,
		Street:  in.Street,
		City:    in.City,
		Pincode: in.Pincode,
		Phone:   in.Phone,
	}, nil
}

func Validate(in CreateAddressInput) error {
	v := utils.NewValidationError()

	if in.Name == "" {
		v.Add("name", "Name is required")
	}
	if in.Street == "" {
		v.Add("street", "Street address is required")
	}
	if in.City == "" {
		v.Add("city", "City is required")
	}
	if !utils.IsPincode(in.Pincode) {
		v.Add("pincode", "Enter a valid 6-digit pincode")
	}
	if !utils.IsPhone(in.Phone) {
		v.Add("phone", "Enter a valid phone number")
	}

	return v.OrNil()
}
