// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/config"
	"github.com/comicden/comics-backend/internal/models"
	"github.com/comicden/comics-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 24,
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	suite.service = NewAuthService(newTestDB(suite.T()), cfg)
}

func (suite *AuthServiceTestSuite) TestRegisterAndLogin() {
	client, err := suite.service.Register(&RegisterRequest{
		Email:    "reader@example.com",
		Password: "Sup3r-Secret",
	})
	suite.Require().NoError(err)
	suite.Equal("reader@example.com", client.Email)
	suite.Equal(models.RoleUser, client.Role)
	suite.NotEmpty(client.PasswordHash)
	suite.NotEqual("Sup3r-Secret", client.PasswordHash)

	resp, err := suite.service.Login(&LoginRequest{
		Email:    "reader@example.com",
		Password: "Sup3r-Secret",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(24*3600, resp.ExpiresIn)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	suite.Require().NoError(err)
	suite.Equal("reader@example.com", claims.Email)
	suite.Equal(string(models.RoleUser), claims.Role)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmailConflicts() {
	_, err := suite.service.Register(&RegisterRequest{
		Email:    "reader@example.com",
		Password: "Sup3r-Secret",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Register(&RegisterRequest{
		Email:    "reader@example.com",
		Password: "An0ther-Secret",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsWeakPassword() {
	for _, password := range []string{
		"short1!",        // upper case missing
		"alllowercase1!", // upper case missing
		"ALLUPPERCASE1!", // lower case missing
		"NoDigitsHere!",  // digit missing
		"NoSpecials123",  // special char missing
		"Ab1!",           // too short
	} {
		_, err := suite.service.Register(&RegisterRequest{
			Email:    "reader@example.com",
			Password: password,
		})
		suite.Require().Error(err, "password %q should be rejected", password)
		suite.ErrorIs(err, apperrors.ErrBadInput)
	}
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := suite.service.Login(&LoginRequest{
		Email:    "nobody@example.com",
		Password: "Sup3r-Secret",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.service.Register(&RegisterRequest{
		Email:    "reader@example.com",
		Password: "Sup3r-Secret",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Login(&LoginRequest{
		Email:    "reader@example.com",
		Password: "Wr0ng-Secret",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBadInput)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
