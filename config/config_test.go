package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePartnerCredentials(t *testing.T) {
	partners := ParsePartnerCredentials("FAKEGOOGLE:FAKEPASSWORD1234, FAKEPEOPLE:FAKEPASSWORD4578,broken,:nokey,COLON:a:b")

	assert.Equal(t, map[string]string{
		"FAKEGOOGLE": "FAKEPASSWORD1234",
		"FAKEPEOPLE": "FAKEPASSWORD4578",
		"COLON":      "a:b",
	}, partners)
}

func TestParsePartnerCredentials_TrimsSecret(t *testing.T) {
	partners := ParsePartnerCredentials("FAKEGOOGLE: FAKEPASSWORD1234 ,FAKEPEOPLE :\tFAKEPASSWORD4578,BLANK:  ")

	assert.Equal(t, map[string]string{
		"FAKEGOOGLE": "FAKEPASSWORD1234",
		"FAKEPEOPLE": "FAKEPASSWORD4578",
	}, partners)
}

func TestParsePartnerCredentials_Empty(t *testing.T) {
	assert.Empty(t, ParsePartnerCredentials(""))
}

func TestCreateNewConfig_Defaults(t *testing.T) {
	t.Setenv("ENFORCE_TIMESTAMP_SKEW", "")
	t.Setenv("ENFORCE_SIGNATURE", "")
	t.Setenv("TIMESTAMP_SKEW_MINUTES", "")
	t.Setenv("PARTNER_TIMEZONE", "")

	conf := CreateNewConfig()

	assert.False(t, conf.PolicyConfig.EnforceTimestampSkew)
	assert.False(t, conf.PolicyConfig.EnforceSignature)
	assert.Equal(t, DefaultTimestampSkewMinutes, conf.PolicyConfig.TimestampSkewMinutes)
	assert.Equal(t, DefaultPartnerTimezone, conf.PartnerTimezone)
}

func TestCreateNewConfig_Overrides(t *testing.T) {
	t.Setenv("ENFORCE_TIMESTAMP_SKEW", "true")
	t.Setenv("ENFORCE_SIGNATURE", "1")
	t.Setenv("TIMESTAMP_SKEW_MINUTES", "10")
	t.Setenv("PARTNER_CREDENTIALS", "P1:s1")

	conf := CreateNewConfig()

	assert.True(t, conf.PolicyConfig.EnforceTimestampSkew)
	assert.True(t, conf.PolicyConfig.EnforceSignature)
	assert.Equal(t, 10, conf.PolicyConfig.TimestampSkewMinutes)
	assert.Equal(t, map[string]string{"P1": "s1"}, conf.Partners)
}
