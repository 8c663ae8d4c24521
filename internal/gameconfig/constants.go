package gameconfig

// Document formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const (
	// DefaultEventFile is the embedded event used when no path is configured
	DefaultEventFile = "events/other_tower.yaml"

	eventSchemaName = "event.schema.json"
	eventSchemaFile = "schema/event.schema.json"
)

// Log messages
const (
	LogMsgLoadedEvent   = "Loaded event configuration"
	LogMsgUsingEmbedded = "No event configuration path set, using embedded default"
)
