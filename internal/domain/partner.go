package domain

// PartnerCredential is a partner key and its shared secret.
type PartnerCredential struct {
	PartnerKey string
	Secret     string
}

// PartnerRegistry is a read-only lookup of partner secrets. It copies its
// input on construction and is never written afterwards, so concurrent
// lookups need no locking.
type PartnerRegistry struct {
	secrets map[string]string
}

func CreatePartnerRegistry(partners map[string]string) *PartnerRegistry {
	secrets := make(map[string]string, len(partners))
	for key, secret := range partners {
		secrets[key] = secret
	}

	return &PartnerRegistry{secrets: secrets}
}

func (r *PartnerRegistry) Lookup(partnerKey string) (PartnerCredential, bool) {
	secret, ok := r.secrets[partnerKey]
	if !ok {
		return PartnerCredential{}, false
	}

	return PartnerCredential{PartnerKey: partnerKey, Secret: secret}, true
}

func (r *PartnerRegistry) Len() int {
	return len(r.secrets)
}
