package usecase

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/speps/go-hashids/v2"

	"stellar-ads/internal/core/domain"
)

// maxMemoLength is the text memo limit of the settlement network.
const maxMemoLength = 28

// memoEncoder turns event ids into short memos such as "clk-Xk2q9mLpR4a"
// that identify the event on the ledger without exposing the raw id.
type memoEncoder struct {
	h *hashids.HashID
}

func newMemoEncoder(salt string) (*memoEncoder, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &memoEncoder{h: h}, nil
}

func (m *memoEncoder) Encode(kind domain.EventKind, id snowflake.ID) (string, error) {
	code, err := m.h.EncodeInt64([]int64{id.Int64()})
	if err != nil {
		return "", fmt.Errorf("encode memo: %w", err)
	}
	prefix := "imp-"
	if kind == domain.KindClick {
		prefix = "clk-"
	}
	memo := prefix + code
	if len(memo) > maxMemoLength {
		memo = memo[:maxMemoLength]
	}
	return memo, nil
}

// Decode returns the event kind and id encoded in a memo.
func (m *memoEncoder) Decode(memo string) (domain.EventKind, snowflake.ID, error) {
	var kind domain.EventKind
	switch {
	case strings.HasPrefix(memo, "imp-"):
		kind = domain.KindImpression
	case strings.HasPrefix(memo, "clk-"):
		kind = domain.KindClick
	default:
		return "", 0, fmt.Errorf("memo %q has no event prefix", memo)
	}
	ids, err := m.h.DecodeInt64WithError(memo[4:])
	if err != nil {
		return "", 0, fmt.Errorf("decode memo: %w", err)
	}
	if len(ids) != 1 {
		return "", 0, fmt.Errorf("memo %q holds %d ids", memo, len(ids))
	}
	return kind, snowflake.ID(ids[0]), nil
}
