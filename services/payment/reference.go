package payment

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	referencePrefix    = "BK"
	referenceIDChars   = 4
	referenceRandChars = 4
)

// ReferenceGenerator builds booking references of the form
// BK-<VENU>-<millis base36>-<rand base36>. References are not guaranteed
// unique; two calls within the same millisecond can collide.
type ReferenceGenerator struct {
	Now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewReferenceGenerator returns a generator seeded from the wall clock.
func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{
		Now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededReferenceGenerator is used where a reproducible random suffix is needed.
func NewSeededReferenceGenerator(now func() time.Time, seed int64) *ReferenceGenerator {
	return &ReferenceGenerator{
		Now: now,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

var referencePattern = regexp.MustCompile(`^BK-[^-\s]{0,4}-[0-9A-Z]+-[0-9A-Z]{4}$`)

// ValidReference reports whether ref has the layout Generate produces.
func ValidReference(ref string) bool {
	return referencePattern.MatchString(ref)
}

var defaultGenerator = NewReferenceGenerator()

// GenerateBookingReference derives a reference from the venue id and the current time.
func GenerateBookingReference(venueID string) string {
	return defaultGenerator.Generate(venueID)
}

// Generate never fails: an empty venue id leaves an empty segment.
func (g *ReferenceGenerator) Generate(venueID string) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	timestamp := strconv.FormatInt(now().UnixMilli(), 36)
	ref := fmt.Sprintf("%s-%s-%s-%s", referencePrefix, venuePrefix(venueID), timestamp, g.randomSuffix())
	return strings.ToUpper(ref)
}

func venuePrefix(venueID string) string {
	runes := []rune(venueID)
	if len(runes) > referenceIDChars {
		runes = runes[:referenceIDChars]
	}
	return string(runes)
}

func (g *ReferenceGenerator) randomSuffix() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	buf := make([]byte, referenceRandChars)
	for i := range buf {
		buf[i] = alphabet[g.rnd.Intn(len(alphabet))]
	}
	return string(buf)
}
