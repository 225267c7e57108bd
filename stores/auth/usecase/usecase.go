package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/ethereum"
	"github.com/x-xyz/auctionhouse/base/validator"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/keys"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
)

const (
	nonceTtl = 5 * time.Minute
	tokenTtl = 24 * time.Hour
)

var timeNow = time.Now

type AuthUseCaseCfg struct {
	JwtSecret string
	// SigningMsgTemplate holds one %s replaced by the nonce
	SigningMsgTemplate string
	// Nonces must be shared by every replica serving logins
	Nonces provider.Provider
}

type impl struct {
	jwtSecret []byte
	template  string
	nonces    provider.Provider
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  cfg.SigningMsgTemplate,
		nonces:    cfg.Nonces,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}

func (im *impl) Nonce(c ctx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := im.nonces.Set(c, nonceKey(address), []byte(nonce), nonceTtl); err != nil {
		c.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) Login(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	key := nonceKey(address)
	nonce, _, err := im.nonces.Get(c, key)
	if err == provider.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		c.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	msg := fmt.Sprintf(im.template, string(nonce))
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, address.ToLowerStr()); err != nil {
		c.WithField("err", err).Warn("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !ok {
		return "", domain.ErrInvalidSignature
	}

	// a nonce logs in once
	if err := im.nonces.Del(c, key); err != nil {
		c.WithField("err", err).Error("nonces.Del failed")
		return "", err
	}

	return im.SignToken(c, address)
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, xerrors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}
	return "", domain.ErrUnauthorized
}
