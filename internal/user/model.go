package user

import "shopswift-be/internal/order"

type User struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Address string        `json:"address"`
	Orders  []order.Order `json:"orders"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

const (
	demoName    = "Will Smith"
	demoAddress = "Park Street, Kolkata, West Bengal"
	newAddress  = "Default Address"
)
