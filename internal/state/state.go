package state

import (
	"github.com/sidereusnuntius/gosocial/internal/config"
	"github.com/sidereusnuntius/gosocial/internal/db"
)

// State is the application state shared by the service and the presentation layer.
type State struct {
	DB     db.DB
	Config config.Configuration
}
