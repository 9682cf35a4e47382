// internal/state/resources.go
package state

import (
	"cosmic-mines/internal/assets"
	"cosmic-mines/internal/event"
	"cosmic-mines/internal/records"
	"cosmic-mines/internal/utils"

	"github.com/sirupsen/logrus"
)

// Resources are shared by every screen for the whole run.
type Resources struct {
	Fonts     *assets.Fonts
	Sprites   *assets.Sprites
	Rng       *utils.PRNGService
	Events    *event.Dispatcher
	Records   records.Store
	Log       logrus.FieldLogger
	StartRows int
}
