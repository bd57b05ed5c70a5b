// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKindComicTitle(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Watchmen", true},
		{"The Sandman: Overture", true},
		{"Batman #404", true},
		{"Giant-Size X-Men (1975)", true},
		{"  Watchmen  ", true}, // trimmed before matching
		{"Watchmen™", false},
		{"Akira!", false}, // '!' is an org-name character, not a title one
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchKind(KindComicTitle, tt.value), "title %q", tt.value)
	}
}

func TestMatchKindPersonName(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Alan Moore", true},
		{"Jane Q. Doe", true},
		{"Denny O'Neil", true},
		{"Jean-Marc Lofficier", true},
		{"John Romita Jr.", true},
		{"Cher", false}, // single word
		{"Alan  Moore", true},
		{"4lan Moore", false},
		{"Évil Genius", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchKind(KindPersonName, tt.value), "name %q", tt.value)
	}
}

func TestMatchKindOrgName(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"DC Comics", true},
		{"Image Comics!", true},
		{"Marvel (1961)", true},
		{"2000 AD", true},
		{"Évil Press", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchKind(KindOrgName, tt.value), "org %q", tt.value)
	}
}

func TestMatchKindUnknownKind(t *testing.T) {
	assert.False(t, MatchKind("no_such_kind", "anything"))
}

func TestClientPasswordValidation(t *testing.T) {
	type passwordHolder struct {
		Password string `validate:"client_password"`
	}

	tests := []struct {
		password string
		want     bool
	}{
		{"Sup3r-Secret", true},
		{"Ab1!xy", true},  // exactly 6 characters
		{"Ab1!x", false},  // too short
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigitsHere!", false},
		{"NoSpecials123", false},
		{"Ab1!" + "aaaaaaaaaaaaaaaaa", false}, // 21 characters
	}

	for _, tt := range tests {
		err := ValidateStruct(&passwordHolder{Password: tt.password})
		if tt.want {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	type registerForm struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,client_password"`
	}

	err := ValidateStruct(&registerForm{Email: "not-an-email", Password: "weak"})
	assert.Error(t, err)

	validationErrors := GetValidationErrors(err)
	assert.Len(t, validationErrors, 2)

	fields := make(map[string]string)
	for _, ve := range validationErrors {
		fields[ve.Field] = ve.Tag
	}
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "client_password", fields["password"])
}
