package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire types for the bakery backend. Field names are the backend's own,
// do not rename them.

type LoginRequest struct {
	CorreoUsuario string `json:"correoUsuario"`
	ClaveUsrio    string `json:"claveUsrio"`
}

type LoginResponse struct {
	ID            int64  `json:"id"`
	LoginUsrio    string `json:"loginUsrio"`
	CorreoUsuario string `json:"correoUsuario"`
	Token         string `json:"token"`
}

type UserProfile struct {
	ID            int64  `json:"id"`
	LoginUsrio    string `json:"loginUsrio"`
	CorreoUsuario string `json:"correoUsuario"`
	IDTipoUsuario string `json:"idTipoUsuario,omitempty"`
	Estado        *int   `json:"estado,omitempty"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Usuario *UserProfile `json:"usuario,omitempty"`
}

type ProfileUpdateRequest struct {
	LoginUsrio    string `json:"loginUsrio"`
	CorreoUsuario string `json:"correoUsuario"`
}

type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type PurchaseItem struct {
	IDProducto     int64           `json:"idProducto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// PurchaseRequest is sent once per checkout attempt. Fields that do not
// apply to the chosen payment method are left empty.
type PurchaseRequest struct {
	IDBanco        string         `json:"idBanco"`
	IDFranquicia   string         `json:"idFranquicia"`
	IDMetodoPago   int            `json:"idMetodoPago"`
	NumTarjeta     string         `json:"numTarjeta"`
	Identificacion string         `json:"identificacion"`
	Referencia     string         `json:"referencia"`
	Items          []PurchaseItem `json:"items"`
}

type PaymentMethodSummary struct {
	Tipo       string `json:"tipo"`
	Banco      string `json:"banco"`
	Franquicia string `json:"franquicia"`
	NumTarjeta string `json:"numTarjeta"`
}

type PurchaseTransaction struct {
	ID         int64                `json:"id"`
	Fecha      time.Time            `json:"fecha"`
	Valor      decimal.Decimal      `json:"valor"`
	Estado     int                  `json:"estado"`
	MetodoPago PaymentMethodSummary `json:"metodoPago"`
}

type PurchaseResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Transaccion *PurchaseTransaction `json:"transaccion"`
}

// TransactionDetail is returned by the history and details endpoints.
type TransactionDetail struct {
	ID     int64           `json:"id"`
	Fecha  string          `json:"fecha"`
	Total  decimal.Decimal `json:"total"`
	Estado string          `json:"estado"`
	Items  []PurchaseItem  `json:"items"`
}
