package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/config"
)

func TestFit(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, fit(&buffer, "0,1,2,3", "1,3,5,7"))

	output := buffer.String()
	assert.Contains(t, output, "y = 2.00000x + 1.00000")
	assert.Contains(t, output, "RESIDUALS")

	buffer.Reset()
	require.NoError(t, fit(&buffer, "1,2,3,4,5", "2,4,5,4,5"))
	assert.Contains(t, buffer.String(), "y = 0.60000x + 2.20000")

	assert.Error(t, fit(&buffer, "5,5,5", "1,2,3"))
	assert.Error(t, fit(&buffer, "a,b", "1,2"))
}

func TestKinds(t *testing.T) {
	var buffer bytes.Buffer
	kinds(&buffer)

	output := buffer.String()
	for _, kind := range []string{"bar", "line", "pie", "doughnut", "scatter", "scatter-fit"} {
		assert.Contains(t, output, kind)
	}
}

func TestOverlays(t *testing.T) {
	assert.Empty(t, overlays(config.OverlayConfig{}))

	indicators := overlays(config.OverlayConfig{SMAPeriod: 3, BollingerPeriod: 5, BollingerStdDev: 2})
	require.Len(t, indicators, 2)
	assert.Equal(t, "SMA(3)", indicators[0].Name())
	assert.Equal(t, "BB(5, 2.00)", indicators[1].Name())
}
