package emergency

import (
	"sort"
	"strings"
)

type Kind string

const (
	KindGeneral Kind = "general"
	KindPolice  Kind = "police"
	KindFire    Kind = "fire"
	KindMedical Kind = "medical"
	KindCrisis  Kind = "crisis"
	KindPoison  Kind = "poison"
)

// Contact is one dialable emergency number for a country.
type Contact struct {
	Name        string
	Number      string
	Description string
	Kind        Kind
}

// byCountry holds the numbers per ISO 3166-1 alpha-2 code ("EU" is the
// pan-European 112 pseudo-entry carried over from production data).
var byCountry = map[string][]Contact{
	"US": {
		{Name: "Emergency Services", Number: "911", Description: "Police, fire and ambulance", Kind: KindGeneral},
		{Name: "Poison Control", Number: "1-800-222-1222", Description: "Poison control center", Kind: KindPoison},
		{Name: "Crisis Hotline", Number: "988", Description: "Suicide and crisis lifeline", Kind: KindCrisis},
	},
	"GB": {
		{Name: "Emergency Services", Number: "999", Description: "Police, fire and ambulance", Kind: KindGeneral},
		{Name: "Non-urgent Medical", Number: "111", Description: "NHS non-emergency advice", Kind: KindMedical},
	},
	"IN": {
		{Name: "General Emergency", Number: "112", Description: "Police, fire and ambulance", Kind: KindGeneral},
		{Name: "Police", Number: "100", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "102", Description: "Medical emergency", Kind: KindMedical},
	},
	"PK": {
		{Name: "Police", Number: "15", Description: "Police department", Kind: KindPolice},
		{Name: "Fire", Number: "16", Description: "Fire department", Kind: KindFire},
		{Name: "Ambulance", Number: "115", Description: "Medical emergency", Kind: KindMedical},
	},
	"EG": {
		{Name: "Police", Number: "122", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "123", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Fire", Number: "180", Description: "Fire department", Kind: KindFire},
	},
	"DZ": {
		{Name: "General Emergency", Number: "112", Description: "Police, fire and ambulance", Kind: KindGeneral},
		{Name: "Police", Number: "17", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "14", Description: "Medical and fire emergency", Kind: KindMedical},
	},
	"AU": {
		{Name: "Emergency Services", Number: "000", Description: "Police, fire and ambulance", Kind: KindGeneral},
	},
	"SG": {
		{Name: "Police", Number: "999", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "995", Description: "Medical and fire emergency", Kind: KindMedical},
	},
	"IQ": {
		{Name: "General Emergency", Number: "112", Description: "Police, fire and ambulance", Kind: KindGeneral},
	},
	"SA": {
		{Name: "General Emergency", Number: "911", Description: "Police, fire and ambulance", Kind: KindGeneral},
	},
	"ID": {
		{Name: "Police", Number: "110", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "118", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Fire", Number: "113", Description: "Fire department", Kind: KindFire},
	},
	"BR": {
		{Name: "Police", Number: "190", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "192", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Fire", Number: "193", Description: "Fire department", Kind: KindFire},
	},
	"JP": {
		{Name: "Police", Number: "110", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "119", Description: "Medical and fire emergency", Kind: KindMedical},
	},
	"CN": {
		{Name: "Police", Number: "110", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "120", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Fire", Number: "119", Description: "Fire department", Kind: KindFire},
	},
	"MA": {
		{Name: "Police", Number: "19", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "15", Description: "Medical and fire emergency", Kind: KindMedical},
	},
	"SY": {
		{Name: "Police", Number: "112", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "110", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Fire", Number: "113", Description: "Fire department", Kind: KindFire},
	},
	"PS": {
		{Name: "Police", Number: "100", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "101", Description: "Medical emergency", Kind: KindMedical},
		{Name: "Civil Defense", Number: "102", Description: "Civil defense", Kind: KindGeneral},
	},
	"ZA": {
		{Name: "Police", Number: "10111", Description: "Police department", Kind: KindPolice},
		{Name: "Ambulance", Number: "10177", Description: "Medical and fire emergency", Kind: KindMedical},
	},
	"NZ": {
		{Name: "Emergency Services", Number: "111", Description: "Police, fire and ambulance", Kind: KindGeneral},
	},
	"EU": {
		{Name: "General Emergency", Number: "112", Description: "Police, fire and ambulance", Kind: KindGeneral},
	},
}

// defaultContacts is served for unknown or missing country codes: the
// three most widespread emergency numbers.
var defaultContacts = []Contact{
	{Name: "General Emergency", Number: "112", Description: "Police, fire and ambulance", Kind: KindGeneral},
	{Name: "General Emergency", Number: "911", Description: "Police, fire and ambulance", Kind: KindGeneral},
	{Name: "General Emergency", Number: "000", Description: "Police, fire and ambulance", Kind: KindGeneral},
}

// Lookup returns the contacts for a country code (case-insensitive)
// and whether the code was known; unknown codes get the default set.
func Lookup(countryCode string) ([]Contact, bool) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if cs, ok := byCountry[code]; ok {
		out := make([]Contact, len(cs))
		copy(out, cs)
		return out, true
	}
	out := make([]Contact, len(defaultContacts))
	copy(out, defaultContacts)
	return out, false
}

// Countries lists the supported country codes, sorted.
func Countries() []string {
	out := make([]string, 0, len(byCountry))
	for code := range byCountry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
