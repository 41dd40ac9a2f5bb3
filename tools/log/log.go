// Package log exposes the logrus logger used across ninjachart, so callers
// do not import logrus directly.
package log

import "github.com/sirupsen/logrus"

type (
	Level         = logrus.Level
	Fields        = logrus.Fields
	TextFormatter = logrus.TextFormatter
)

const (
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

var (
	SetFormatter = logrus.SetFormatter
	SetLevel     = logrus.SetLevel
	ParseLevel   = logrus.ParseLevel

	WithField  = logrus.WithField
	WithFields = logrus.WithFields

	Debugf = logrus.Debugf
	Info   = logrus.Info
	Infof  = logrus.Infof
	Warnf  = logrus.Warnf
	Fatal  = logrus.Fatal
)
