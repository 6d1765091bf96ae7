package domain

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fieldworks/contractor-billing/invoicing/model"
)

const (
	DefaultRegion   = "Metro"
	defaultSequence = "0000"
	fallbackPrefix  = "XX"
)

var upper = cases.Upper(language.Und)

// SynthesizeInvoiceNumber builds {prefix}/{region}/NC/{YY}/{MONTH}/-{sequence}A.
// It does not guarantee uniqueness: the sequence comes from the contractor's
// registration id, so uniqueness of that id is an operational requirement.
func SynthesizeInvoiceNumber(in model.InvoiceNumberInput) string {
	region := strings.TrimSpace(in.Region)
	if region == "" {
		region = DefaultRegion
	}

	return fmt.Sprintf("%s/%s/NC/%02d/%s/-%sA",
		invoicePrefix(in.ContractorName),
		region,
		in.Period.Year%100,
		upper.String(in.Period.Month.String()),
		sequenceToken(in.RegistrationID),
	)
}

// invoicePrefix takes the initials of the first two words, or the first three
// letters of a single-word name. Only letters count, and each one stays a single rune
// when uppercased.
func invoicePrefix(name string) string {
	var words [][]rune
	for _, field := range strings.Fields(name) {
		if letters := lettersOf(field); len(letters) > 0 {
			words = append(words, letters)
		}
	}

	var prefix []rune
	switch len(words) {
	case 0:
		return fallbackPrefix
	case 1:
		prefix = words[0][:min(3, len(words[0]))]
	default:
		prefix = []rune{words[0][0], words[1][0]}
	}

	for i, r := range prefix {
		prefix[i] = unicode.ToUpper(r)
	}
	return string(prefix)
}

func lettersOf(word string) []rune {
	var letters []rune
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

// sequenceToken returns the trailing dash-delimited segment of a registration id.
func sequenceToken(registrationID string) string {
	registrationID = strings.TrimSpace(registrationID)
	if i := strings.LastIndex(registrationID, "-"); i >= 0 {
		registrationID = registrationID[i+1:]
	}
	if registrationID == "" {
		return defaultSequence
	}
	return registrationID
}
