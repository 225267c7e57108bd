package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/auctionhouse/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// Nonce issues a one-time nonce the address signs to log in
	Nonce(c ctx.Ctx, address Address) (string, error)
	// Login checks the signature of the signing message built from the pending nonce
	Login(c ctx.Ctx, address Address, signature string) (token string, err error)
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (Address, error)
}
