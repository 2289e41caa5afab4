package barrage

// BossVolley fires its specs on frames where tick % Every == Phase.
type BossVolley struct {
	Every int
	Phase int
	Specs []VolleySpec
}

// BossPattern is one attack pattern the boss can be assigned for a cycle.
type BossPattern struct {
	Name    string
	Weight  int
	Volleys []BossVolley
}

// BossPatterns are the four boss attacks, each equally likely.
var BossPatterns = []BossPattern{
	{
		Name:   "stream",
		Weight: 25,
		Volleys: []BossVolley{
			{Every: 10, Specs: []VolleySpec{Fixed(20, 5, 1, 0)}},
			{Every: 50, Specs: []VolleySpec{Seeking(10, 5, 5, 60)}},
		},
	},
	{
		Name:   "sniper",
		Weight: 25,
		Volleys: []BossVolley{
			{Every: 8, Specs: []VolleySpec{Seeking(10, 10, 1, 0)}},
			{Every: 50, Specs: []VolleySpec{Fixed(10, 5, 3, 30)}},
		},
	},
	{
		Name:   "curtain",
		Weight: 25,
		Volleys: []BossVolley{
			{Every: 50, Specs: []VolleySpec{Fixed(10, 5, 5, 60), Fixed(10, 4, 4, 45)}},
			{Every: 50, Phase: 25, Specs: []VolleySpec{Seeking(10, 5, 3, 30)}},
		},
	},
	{
		Name:   "ring",
		Weight: 25,
		Volleys: []BossVolley{
			{Every: 10, Specs: []VolleySpec{Fixed(10, 5, 20, 360)}},
		},
	},
}

// noPattern marks a schedule that has not rolled yet.
const noPattern = -1

// BossSchedule picks a boss pattern at the start of every cycle and fires
// it during the first ActiveFrames frames of the cycle.
type BossSchedule struct {
	Patterns     []BossPattern
	CycleFrames  int
	ActiveFrames int

	current int
}

// NewBossSchedule creates a schedule with no pattern chosen yet.
func NewBossSchedule(cycleFrames, activeFrames int) *BossSchedule {
	return &BossSchedule{
		Patterns:     BossPatterns,
		CycleFrames:  cycleFrames,
		ActiveFrames: activeFrames,
		current:      noPattern,
	}
}

// Reset forgets the current pattern. Nothing fires until the next cycle
// boundary rolls a new one.
func (s *BossSchedule) Reset() {
	s.current = noPattern
}

// Current returns the active pattern, or nil before the first roll.
func (s *BossSchedule) Current() *BossPattern {
	if s.current == noPattern {
		return nil
	}
	return &s.Patterns[s.current]
}

// Update rolls a pattern on cycle boundaries and returns the volley specs
// due on this frame.
func (s *BossSchedule) Update(tick int, rng *SimpleRNG) []VolleySpec {
	if s.CycleFrames <= 0 || len(s.Patterns) == 0 {
		return nil
	}
	if tick%s.CycleFrames == 0 {
		s.current = s.roll(rng)
	}
	if s.current == noPattern || tick%s.CycleFrames >= s.ActiveFrames {
		return nil
	}

	var due []VolleySpec
	for _, v := range s.Patterns[s.current].Volleys {
		if v.Every > 0 && tick%v.Every == v.Phase {
			due = append(due, v.Specs...)
		}
	}
	return due
}

// roll selects a pattern index by weight.
func (s *BossSchedule) roll(rng *SimpleRNG) int {
	total := 0
	for _, p := range s.Patterns {
		total += p.Weight
	}
	if total <= 0 {
		return rng.Intn(len(s.Patterns))
	}
	roll := rng.Intn(total)
	cumulative := 0
	for i, p := range s.Patterns {
		cumulative += p.Weight
		if roll < cumulative {
			return i
		}
	}
	return len(s.Patterns) - 1
}
