package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaidKey(t *testing.T) {
	k := PaidKey("TIT-001", "1", "05/02/2024", "1.000,00", "ACME LTDA")
	assert.Equal(t, "TIT-001|1|05/02/2024|1.000,00|ACME LTDA", k)
	assert.Equal(t, []string{"TIT-001", "1", "05/02/2024", "1.000,00", "ACME LTDA"}, Parts(k))
}

func TestKey_TrimsFields(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key(" a ", "b\t"))
}

func TestKey_DistinctFieldsDistinctKeys(t *testing.T) {
	assert.NotEqual(t,
		PaidKey("TIT-001", "1", "05/02/2024", "1.000,00", "ACME"),
		PaidKey("TIT-001", "2", "05/02/2024", "1.000,00", "ACME"))
}
