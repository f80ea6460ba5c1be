package domain

// Badge is one tier of a badge track with its computed state.
type Badge struct {
	Name        string
	Description string
	Earned      bool
	Progress    int
}

// Badges groups computed badge tiers by track.
type Badges struct {
	Gold   []Badge
	Silver []Badge
}

type badgeTier struct {
	name        string
	description string
	progress    int
}

// Tier i is earned when the track counter is greater than i.
var (
	goldTiers = []badgeTier{
		{name: "Problem Solver", description: "Solved 500 questions", progress: 85},
		{name: "Top Contributor", description: "1000+ helpful answers", progress: 100},
		{name: "Expert", description: "Maintained 90% acceptance rate", progress: 65},
	}
	silverTiers = []badgeTier{
		{name: "Quick Learner", description: "Solved 100 questions", progress: 100},
		{name: "Helper", description: "100+ accepted answers", progress: 100},
	}
)

// ComputeBadges derives badge progress from the user's badge counters.
func ComputeBadges(count BadgesCount) Badges {
	return Badges{
		Gold:   computeTrack(goldTiers, count.Gold),
		Silver: computeTrack(silverTiers, count.Silver),
	}
}

func computeTrack(tiers []badgeTier, count int) []Badge {
	badges := make([]Badge, len(tiers))
	for i, tier := range tiers {
		earned := count > i
		progress := 0
		if earned {
			progress = tier.progress
		}
		badges[i] = Badge{
			Name:        tier.name,
			Description: tier.description,
			Earned:      earned,
			Progress:    progress,
		}
	}
	return badges
}
