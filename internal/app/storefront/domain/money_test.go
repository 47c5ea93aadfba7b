package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(999, 100)
		require.NoError(t, err)
		num, ok := m.Numerator()
		require.True(t, ok)
		denom, _ := m.Denominator()
		assert.Equal(t, int64(999), num)
		assert.Equal(t, int64(100), denom)
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})

	t.Run("stored in lowest terms", func(t *testing.T) {
		m, _ := NewMoney(200, 2)
		num, _ := m.Numerator()
		denom, _ := m.Denominator()
		assert.Equal(t, int64(100), num)
		assert.Equal(t, int64(1), denom)
	})
}

func TestParseMoney(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		m, err := ParseMoney("9.99")
		require.NoError(t, err)
		assert.Equal(t, "9.99", m.String())
	})

	t.Run("integer string", func(t *testing.T) {
		m, err := ParseMoney(" 25 ")
		require.NoError(t, err)
		assert.Equal(t, "25.00", m.String())
	})

	t.Run("negative allowed", func(t *testing.T) {
		m, err := ParseMoney("-3.5")
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseMoney("ten dollars")
		assert.Error(t, err)
		_, err = ParseMoney("")
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := MustParseMoney("9.99")
	b := MustParseMoney("0.01")

	assert.Equal(t, "10.00", a.Add(b).String())
	assert.Equal(t, "9.98", a.Subtract(b).String())
	assert.Equal(t, "19.98", a.MultiplyByInt(2).String())
	assert.Equal(t, "9.99", a.String(), "operands are not modified")
}

func TestMoney_Precision(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3, unlike float64
	sum := MustParseMoney("0.1").Add(MustParseMoney("0.2"))
	assert.True(t, sum.Equals(MustParseMoney("0.3")))
}

func TestMoney_Comparisons(t *testing.T) {
	m1 := MustParseMoney("100")
	m2 := MustParseMoney("50")
	m3 := MustParseMoney("100.00")

	assert.True(t, m1.GreaterThan(m2))
	assert.False(t, m2.GreaterThan(m1))
	assert.True(t, m2.LessThan(m1))
	assert.True(t, m1.Equals(m3))
	assert.Equal(t, 0, m1.Cmp(m3))
	assert.Equal(t, -1, m2.Cmp(m1))
	assert.True(t, Zero().IsZero())
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]*Money{"price": MustParseMoney("19.98")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 19.98}`, string(data))
}

func TestMoney_IsWholeCents(t *testing.T) {
	for _, s := range []string{"0", "25", "9.9", "9.99", "1/4"} {
		assert.True(t, MustParseMoney(s).IsWholeCents(), s)
	}
	for _, s := range []string{"9.999", "0.001", "1/3"} {
		assert.False(t, MustParseMoney(s).IsWholeCents(), s)
	}
}

func TestMoney_IsSafeForStorage(t *testing.T) {
	assert.True(t, MustParseMoney("2499.99").IsSafeForStorage())
	assert.False(t, MustParseMoney("123456789012345678901234567890").IsSafeForStorage())
}
