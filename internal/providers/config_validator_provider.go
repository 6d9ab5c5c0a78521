package providers

import (
	"fmt"

	"fitbook/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate runs the tag rules section by section; gookit reports the
// first failing section with its field errors.
func (cv *CnfValidator) Validate() error {
	sections := map[string]interface{}{
		"webServer": &cv.conf.WebServer,
		"store":     &cv.conf.Store,
		"payment":   &cv.conf.Payment,
		"logger":    &cv.conf.Logger,
	}
	for name, section := range sections {
		v := validate.Struct(section)
		if !v.Validate() {
			return fmt.Errorf("config section %s: %s", name, v.Errors.One())
		}
	}
	return nil
}
