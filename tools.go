//go:build tools

package ninjachart

import (
	_ "github.com/vektra/mockery/v2"
)
