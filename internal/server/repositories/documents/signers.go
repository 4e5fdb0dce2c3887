package documents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/signly/internal/server/models"
)

type signerRecord struct {
	Account  string     `json:"account"`
	SignedAt *time.Time `json:"signed_at,omitempty"`
}

func encodeSigners(signers []models.Signer) ([]byte, error) {
	recs := make([]signerRecord, 0, len(signers))
	for _, s := range signers {
		rec := signerRecord{Account: string(s.Account)}
		if s.Signed() {
			t := s.SignedAt.UTC()
			rec.SignedAt = &t
		}
		recs = append(recs, rec)
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode signers: %w", err)
	}
	return b, nil
}

func decodeSigners(b []byte) ([]models.Signer, error) {
	var recs []signerRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode signers: %w", err)
	}
	out := make([]models.Signer, 0, len(recs))
	for _, r := range recs {
		s := models.Signer{Account: models.Identity(r.Account)}
		if r.SignedAt != nil {
			s.SignedAt = r.SignedAt.UTC()
		}
		out = append(out, s)
	}
	return out, nil
}
