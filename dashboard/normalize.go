package dashboard

import "github.com/maastricht-university/ohcr-dashboard/clients"

// Normalize cleans raw utterance records for layout. It only fills defaults:
// a missing u_id falls back to the record's position, missing timestamps are
// already 0 from decoding. An absent ohcr stays "" rather than becoming "?"
// so the layout engine can tell an untagged session from an unknown-coded
// one. Records are never dropped, reordered or deduplicated.
func Normalize(raw []clients.RawUtterance) []Utterance {
	utts := make([]Utterance, 0, len(raw))
	for i, r := range raw {
		id := i
		if r.UID != nil {
			id = *r.UID
		}
		utts = append(utts, Utterance{
			ID:     id,
			TStart: r.TStart,
			TEnd:   r.TEnd,
			Text:   r.Text,
			Role:   r.Role,
			Act:    r.Act,
			OHCR:   r.OHCR,
		})
	}
	return utts
}
