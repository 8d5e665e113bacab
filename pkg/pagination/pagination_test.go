package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	p := Params{Page: 0, Limit: 0}
	p.Validate()
	assert.Equal(t, Default(), p)

	p = Params{Page: 3, Limit: 500}
	p.Validate()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Params{Page: 2, Limit: 25}, FromQuery("2", "25"))
	assert.Equal(t, Default(), FromQuery("", ""))
	assert.Equal(t, Default(), FromQuery("abc", "-1"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	Params{Page: 2, Limit: 25}.Apply(v)
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "25", v.Get("limit"))
}
