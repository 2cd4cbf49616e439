package enums

import "fmt"

// LeadSource describes the allowed values for the `source` column on leads.
type LeadSource string

const (
	LeadSourceWebsite     LeadSource = "website"
	LeadSourceFacebookAds LeadSource = "facebook_ads"
	LeadSourceGoogleAds   LeadSource = "google_ads"
	LeadSourceReferral    LeadSource = "referral"
	LeadSourceEvents      LeadSource = "events"
	LeadSourceOther       LeadSource = "other"
)

var validLeadSources = []LeadSource{
	LeadSourceWebsite,
	LeadSourceFacebookAds,
	LeadSourceGoogleAds,
	LeadSourceReferral,
	LeadSourceEvents,
	LeadSourceOther,
}

// LeadSources returns every valid source value in declaration order.
func LeadSources() []LeadSource {
	return append([]LeadSource(nil), validLeadSources...)
}

// IsValid reports whether the value matches the canonical lead source enum.
func (s LeadSource) IsValid() bool {
	for _, candidate := range validLeadSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLeadSource converts the raw string to LeadSource.
func ParseLeadSource(value string) (LeadSource, error) {
	for _, candidate := range validLeadSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead source %q", value)
}
