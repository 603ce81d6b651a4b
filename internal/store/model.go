package store

import "time"

// Collection names in the fomo database.
const (
	RoadmapTasksCollection     = "roadmap_tasks"
	TeamMembersCollection      = "team_members"
	PlatformSettingsCollection = "platform_settings"
)

// PlatformSettingsID keys the singleton settings document.
const PlatformSettingsID = "platform_settings"

// TaskStatus is the lifecycle state of a roadmap task.
type TaskStatus string

const (
	TaskDone     TaskStatus = "done"
	TaskProgress TaskStatus = "progress"
	TaskPlanned  TaskStatus = "planned"
)

// RoadmapTask is one entry on the public roadmap. Documents are keyed by the
// application-level id field (a UUID string), not by Mongo's _id.
type RoadmapTask struct {
	ID        string     `bson:"id"`
	Name      string     `bson:"name"`
	Status    TaskStatus `bson:"status"`
	Category  string     `bson:"category"`
	Order     int        `bson:"order"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// TeamMember is a public team profile with English and Russian copy.
type TeamMember struct {
	ID          string            `bson:"id"`
	Name        string            `bson:"name"`
	NameRU      string            `bson:"name_ru"`
	Position    string            `bson:"position"`
	PositionRU  string            `bson:"position_ru"`
	Bio         string            `bson:"bio"`
	BioRU       string            `bson:"bio_ru"`
	Avatar      *string           `bson:"avatar"`
	SocialLinks map[string]string `bson:"social_links"`
	Order       int               `bson:"order"`
	CreatedAt   time.Time         `bson:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at"`
}

// ServiceModule is one toggleable platform feature listed in the settings
// document. Only the module count is consumed here.
type ServiceModule struct {
	Key     string `bson:"key"`
	Name    string `bson:"name"`
	Enabled bool   `bson:"enabled"`
}

// PlatformSettings is the singleton settings document, owned by the backend;
// this tool only ever reads it.
type PlatformSettings struct {
	ID             string          `bson:"id"`
	ServiceModules []ServiceModule `bson:"service_modules"`
}
