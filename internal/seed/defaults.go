package seed

import (
	"time"

	"github.com/google/uuid"

	"fomo-seed/internal/store"
)

// DefaultRoadmapTasks returns the twelve launch-era roadmap entries, each with
// a fresh UUID and now as both timestamps. Order indices are 1-based and match
// the display order on the roadmap page.
func DefaultRoadmapTasks(now time.Time) []store.RoadmapTask {
	tasks := []store.RoadmapTask{
		{Name: "Platform Architecture", Status: store.TaskDone, Category: "Development", Order: 1},
		{Name: "Core Team Formation", Status: store.TaskDone, Category: "Team", Order: 2},
		{Name: "Alpha Version Launch", Status: store.TaskDone, Category: "Development", Order: 3},
		{Name: "Community Building", Status: store.TaskDone, Category: "Marketing", Order: 4},
		{Name: "Beta Version v1.0", Status: store.TaskDone, Category: "Development", Order: 5},
		{Name: "NFT Box 666 Mint", Status: store.TaskDone, Category: "NFT", Order: 6},
		{Name: "Wallet Integration", Status: store.TaskDone, Category: "Development", Order: 7},
		{Name: "Analytics Dashboard", Status: store.TaskDone, Category: "Development", Order: 8},
		{Name: "Beta Version v1.1", Status: store.TaskProgress, Category: "Development", Order: 9},
		{Name: "OTC Marketplace", Status: store.TaskProgress, Category: "Development", Order: 10},
		{Name: "Mobile App Development", Status: store.TaskProgress, Category: "Development", Order: 11},
		{Name: "Partnership Programs", Status: store.TaskProgress, Category: "Business", Order: 12},
	}
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
	}
	return tasks
}

// DefaultTeamMembers returns the three founding team profiles with bilingual
// copy and social links. Avatars are left unset until uploaded via the admin
// panel.
func DefaultTeamMembers(now time.Time) []store.TeamMember {
	members := []store.TeamMember{
		{
			Name:       "Alex Morgan",
			NameRU:     "Алекс Морган",
			Position:   "CEO & Founder",
			PositionRU: "CEO и Основатель",
			Bio:        "10+ years in blockchain and crypto trading",
			BioRU:      "10+ лет опыта в блокчейне и крипто-трейдинге",
			SocialLinks: map[string]string{
				"twitter":  "https://twitter.com/alexmorgan",
				"linkedin": "https://linkedin.com/in/alexmorgan",
			},
			Order: 1,
		},
		{
			Name:       "Sarah Chen",
			NameRU:     "Сара Чен",
			Position:   "CTO",
			PositionRU: "Технический директор",
			Bio:        "Former Google engineer, blockchain expert",
			BioRU:      "Бывший инженер Google, эксперт по блокчейну",
			SocialLinks: map[string]string{
				"twitter":  "https://twitter.com/sarahchen",
				"linkedin": "https://linkedin.com/in/sarahchen",
			},
			Order: 2,
		},
		{
			Name:       "Michael Ross",
			NameRU:     "Майкл Росс",
			Position:   "Head of Product",
			PositionRU: "Руководитель продукта",
			Bio:        "Ex-Binance, product strategy specialist",
			BioRU:      "Экс-Binance, специалист по продуктовой стратегии",
			SocialLinks: map[string]string{
				"twitter":  "https://twitter.com/michaelross",
				"linkedin": "https://linkedin.com/in/michaelross",
			},
			Order: 3,
		},
	}
	for i := range members {
		members[i].ID = uuid.NewString()
		members[i].CreatedAt = now
		members[i].UpdatedAt = now
	}
	return members
}
