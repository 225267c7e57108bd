package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/base/ethereum"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/service/cache/provider"
	"github.com/x-xyz/auctionhouse/service/cache/provider/primitive"
)

const template = "Sign in to the auction house: %s"

var mockCtx = ctx.Background()

type authSuite struct {
	suite.Suite
	nonces provider.Provider
	im     domain.AuthUsecase
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupTest() {
	s.nonces = primitive.NewPrimitive("nonce", 1)
	s.im = New(&AuthUseCaseCfg{
		JwtSecret:          "jwt-secret",
		SigningMsgTemplate: template,
		Nonces:             s.nonces,
	})
}

func (s *authSuite) TearDownTest() {
	timeNow = time.Now
}

func (s *authSuite) sign(nonce string) (domain.Address, string) {
	req := s.Require()
	privateKey, publicKey, err := ethereum.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(*publicKey).Hex())

	if len(nonce) == 0 {
		nonce, err = s.im.Nonce(mockCtx, address)
		req.NoError(err)
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(fmt.Sprintf(template, nonce))), privateKey)
	req.NoError(err)
	return address, hexutil.Encode(sig)
}

func (s *authSuite) TestSignAndParseToken() {
	tkn, err := s.im.SignToken(mockCtx, "0xABC")
	s.Require().NoError(err)
	s.NotEmpty(tkn)

	address, err := s.im.ParseToken(mockCtx, tkn)
	s.NoError(err)
	s.Equal(domain.Address("0xabc"), address)

	_, err = s.im.ParseToken(mockCtx, tkn+"x")
	s.Error(err)
}

func (s *authSuite) TestExpiredToken() {
	timeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	tkn, err := s.im.SignToken(mockCtx, "0xabc")
	s.Require().NoError(err)

	_, err = s.im.ParseToken(mockCtx, tkn)
	s.Error(err)
}

func (s *authSuite) TestNonceTtl() {
	address := domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	nonce, err := s.im.Nonce(mockCtx, address)
	s.Require().NoError(err)
	s.Len(nonce, 32)

	stored, ttl, err := s.nonces.Get(mockCtx, nonceKey(address))
	s.Require().NoError(err)
	s.Equal(nonce, string(stored))
	s.True(ttl > 0 && ttl <= nonceTtl)
}

func (s *authSuite) TestLogin() {
	req := s.Require()
	address, sig := s.sign("")

	tkn, err := s.im.Login(mockCtx, address, sig)
	req.NoError(err)

	parsed, err := s.im.ParseToken(mockCtx, tkn)
	req.NoError(err)
	s.Equal(address.ToLower(), parsed)

	// the nonce is gone after one login
	_, err = s.im.Login(mockCtx, address, sig)
	s.Equal(domain.ErrInvalidNonce, err)
}

func (s *authSuite) TestLoginWrongSignature() {
	address, _ := s.sign("")
	_, sig := s.sign("another nonce")

	_, err := s.im.Login(mockCtx, address, sig)
	s.Equal(domain.ErrInvalidSignature, err)
}

func (s *authSuite) TestLoginWithoutNonce() {
	address := domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	_, err := s.im.Login(mockCtx, address, "0x00")
	s.Equal(domain.ErrInvalidNonce, err)

	_, err = s.im.Nonce(mockCtx, "not an address")
	s.Equal(domain.ErrInvalidAddress, err)
}
