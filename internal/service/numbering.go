package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identifier prefixes keep the three namespaces disjoint and make the
// entity kind readable at a glance.
const (
	quoteNumberPrefix  = "MER-QUO-"
	policyNumberPrefix = "MER-POL-"
	claimNumberPrefix  = "MER-CLM-"
)

func NewQuoteNumber() string {
	return quoteNumberPrefix + uuid.NewString()
}

func NewClaimNumber() string {
	return claimNumberPrefix + uuid.NewString()
}

// PolicyNumberSeq issues time-derived policy numbers. The millisecond
// value is forced strictly increasing under the mutex, so two policies
// created within the same clock tick can never share a number.
type PolicyNumberSeq struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewPolicyNumberSeq() *PolicyNumberSeq {
	return &PolicyNumberSeq{now: time.Now}
}

func (s *PolicyNumberSeq) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return policyNumberPrefix + strconv.FormatInt(ms, 10)
}
