package ecb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<gesmes:Sender>
		<gesmes:name>European Central Bank</gesmes:name>
	</gesmes:Sender>
	<Cube>
		<Cube time="2024-03-15">
			<Cube currency="USD" rate="1.0892"/>
			<Cube currency="JPY" rate="161.95"/>
			<Cube currency="GBP" rate="0.85495"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func TestParseRates(t *testing.T) {
	rates, err := ParseRates([]byte(sampleFeed))
	require.NoError(t, err)

	assert.Len(t, rates, 3)
	assert.True(t, rates["USD"].Equal(decimal.RequireFromString("1.0892")))
	assert.True(t, rates["JPY"].Equal(decimal.RequireFromString("161.95")))
	assert.True(t, rates["GBP"].Equal(decimal.RequireFromString("0.85495")))
}

func TestParseRatesEmptyFeed(t *testing.T) {
	_, err := ParseRates([]byte(`<Envelope><Cube></Cube></Envelope>`))
	assert.Error(t, err)
}

func TestParseRatesMalformedXML(t *testing.T) {
	_, err := ParseRates([]byte(`not xml at all <<`))
	assert.Error(t, err)
}

func TestFetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	rates, err := client.FetchRates(context.Background())
	require.NoError(t, err)
	assert.True(t, rates["USD"].Equal(decimal.RequireFromString("1.0892")))
}

func TestFetchRatesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchRates(context.Background())
	assert.Error(t, err)
}
