package catalog

import "github.com/vietanh2810/youthopia-api/internal/domain"

var events = []domain.Event{
	{
		ID:           "evt-01",
		Name:         "Prism Panel (Debate)",
		Description:  "Engage in a stimulating debate on mental health topics, sharpening your critical thinking and public speaking skills.",
		Date:         "Sat, Nov 23",
		Time:         "10:00 AM",
		Location:     "Seminar Hall",
		Points:       20,
		Participants: "20",
		Prizes:       domain.Prizes{First: "7k", Second: "5k", Third: "3k"},
	},
	{
		ID:           "evt-02",
		Name:         "Pulse Parade (Group Dance)",
		Description:  "Collaborate with your peers to create and perform a dance routine that expresses a story or emotion.",
		Date:         "Sat, Nov 23",
		Time:         "12:00 PM",
		Location:     "Quadrangle Stage",
		Points:       25,
		Participants: "20",
		Prizes:       domain.Prizes{First: "15k", Second: "10k", Third: "7k"},
	},
	{
		ID:           "evt-03",
		Name:         "Unmasking Emotions (Mono Act)",
		Description:  "A solo performance event where you can explore and portray a range of human emotions.",
		Date:         "Sat, Nov 23",
		Time:         "2:00 PM",
		Location:     "Amphitheatre",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-04",
		Name:         "Roots in Reverb (Folk Dance)",
		Description:  "Showcase the rich cultural heritage through folk dance. A vibrant and energetic event celebrating traditions.",
		Date:         "Sat, Nov 23",
		Time:         "4:00 PM",
		Location:     "Quadrangle Stage",
		Points:       20,
		Participants: "20",
		Prizes:       domain.Prizes{First: "20k", Second: "15k", Third: "10k"},
	},
	{
		ID:           "evt-05",
		Name:         "Pigments of Psyche (Painting)",
		Description:  "Express your inner world on canvas in this therapeutic and creative session.",
		Date:         "Sat, Nov 23",
		Time:         "ALL DAY",
		Location:     "Art Studio",
		Points:       10,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-06",
		Name:         "Spell of Stock (Psyk Exchange)",
		Description:  "A unique mock stock market event focused on psychological concepts. Test your strategy and understanding of human behavior.",
		Date:         "Sun, Nov 24",
		Time:         "10:00 AM",
		Location:     "Seminar Hall",
		Points:       20,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-07",
		Name:         "Chords of Confluence (Singing)",
		Description:  "A group singing competition to celebrate harmony and collaboration. Bring your voices together to create something beautiful.",
		Date:         "Sun, Nov 24",
		Time:         "11:00 AM",
		Location:     "Main Auditorium",
		Points:       25,
		Participants: "20",
		Prizes:       domain.Prizes{First: "15k", Second: "10k", Third: "7k"},
	},
	{
		ID:           "evt-08",
		Name:         "Dreamcraft Deck (Pitch Deck)",
		Description:  "Develop and present an innovative idea related to mental wellness. Hone your entrepreneurial and presentation skills.",
		Date:         "Sat, Nov 23",
		Time:         "1:00 PM",
		Location:     "Library Wing",
		Points:       20,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-09",
		Name:         "Motion Mirage (Mime)",
		Description:  "Tell a story without words. Mime is a powerful art form for expressing complex emotions and situations creatively.",
		Date:         "Sun, Nov 24",
		Time:         "1:00 PM",
		Location:     "Amphitheatre",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "7k", Second: "5k", Third: "3k"},
	},
	{
		ID:           "evt-10",
		Name:         "Scenezone (Skit)",
		Description:  "Work in a team to write and perform a short skit on a given theme related to youth and well-being.",
		Date:         "Sun, Nov 24",
		Time:         "3:00 PM",
		Location:     "Quadrangle Stage",
		Points:       25,
		Participants: "15",
		Prizes:       domain.Prizes{First: "15k", Second: "10k", Third: "7k"},
	},
	{
		ID:           "evt-11",
		Name:         "Clash of Cadence (Dance Battle)",
		Description:  "Showcase your individual dance skills in an exciting head-to-head battle format. Feel the energy and express yourself!",
		Date:         "Sun, Nov 24",
		Time:         "5:00 PM",
		Location:     "Quadrangle Stage",
		Points:       15,
		Participants: "No cap",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-12",
		Name:         "Shadows & Light (Classical Dance)",
		Description:  "A solo classical dance event to express timeless stories and emotions through disciplined, graceful movement.",
		Date:         "Sat, Nov 23",
		Time:         "3:00 PM",
		Location:     "Main Auditorium",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "7k", Second: "5k", Third: "3k"},
	},
	{
		ID:           "evt-13",
		Name:         "Aurora Couture (Fashion Show)",
		Description:  "Design and showcase outfits based on themes of mental wellness and resilience. A fusion of creativity and confidence.",
		Date:         "Sat, Nov 23",
		Time:         "6:00 PM",
		Location:     "Main Auditorium",
		Points:       20,
		Participants: "20",
		Prizes:       domain.Prizes{First: "15k", Second: "10k", Third: "7k"},
	},
	{
		ID:           "evt-14",
		Name:         "Aurora Eloquence (Elocution)",
		Description:  "Deliver a powerful speech on a compelling topic. This event is a platform to voice your thoughts and inspire others.",
		Date:         "Sun, Nov 24",
		Time:         "12:00 PM",
		Location:     "Seminar Hall",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-15",
		Name:         "Note to Self (Solo Singing)",
		Description:  "Express your emotions through the power of your voice in this solo singing competition. Choose a song that speaks to you.",
		Date:         "Sat, Nov 23",
		Time:         "5:00 PM",
		Location:     "Amphitheatre",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "7k", Second: "5k", Third: "3k"},
	},
	{
		ID:           "evt-16",
		Name:         "Inkside Out (Creative Writing)",
		Description:  "Pen down your thoughts, stories, or poems. A quiet, reflective space to channel your creativity and emotions into words.",
		Date:         "Sat, Nov 23",
		Time:         "ALL DAY",
		Location:     "Library Wing",
		Points:       10,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-17",
		Name:         "Cluescape (Treasure Hunt)",
		Description:  "Team up with friends to solve riddles and uncover clues hidden across the campus. A fun-filled adventure of teamwork.",
		Date:         "Sun, Nov 24",
		Time:         "2:00 PM",
		Location:     "Campus-wide",
		Points:       30,
		Participants: "20",
		Prizes:       domain.Prizes{First: "15k", Second: "10k", Third: "7k"},
	},
	{
		ID:           "evt-18",
		Name:         "Neuro Muse (Digital Art)",
		Description:  "Create stunning digital artwork on themes of mental wellness. Use your favorite tools to bring your vision to life.",
		Date:         "Sun, Nov 24",
		Time:         "ALL DAY",
		Location:     "Digital Lab",
		Points:       10,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-19",
		Name:         "Framestorm (Comic Flow)",
		Description:  "Tell a story through a sequence of drawings. Create your own comic strip and share a unique narrative.",
		Date:         "Sun, Nov 24",
		Time:         "ALL DAY",
		Location:     "Art Studio",
		Points:       10,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
	{
		ID:           "evt-20",
		Name:         "Stellar Spoof (Mimicry)",
		Description:  "Show off your talent for imitation! A light-hearted event to bring smiles and laughter through mimicry.",
		Date:         "Sun, Nov 24",
		Time:         "4:00 PM",
		Location:     "Amphitheatre",
		Points:       15,
		Participants: "20",
		Prizes:       domain.Prizes{First: "5k", Second: "3k", Third: "2k"},
	},
}

var phases = map[string]domain.EventPhase{
	"evt-03": domain.PhaseAwareness,
	"evt-05": domain.PhaseAwareness,
	"evt-06": domain.PhaseAwareness,
	"evt-08": domain.PhaseAwareness,
	"evt-14": domain.PhaseAwareness,
	"evt-16": domain.PhaseAwareness,
	"evt-18": domain.PhaseAwareness,
	"evt-19": domain.PhaseAwareness,
	"evt-20": domain.PhaseAwareness,

	"evt-01": domain.PhaseEngagement,
	"evt-02": domain.PhaseEngagement,
	"evt-04": domain.PhaseEngagement,
	"evt-07": domain.PhaseEngagement,
	"evt-09": domain.PhaseEngagement,
	"evt-10": domain.PhaseEngagement,
	"evt-11": domain.PhaseEngagement,
	"evt-12": domain.PhaseEngagement,
	"evt-13": domain.PhaseEngagement,
	"evt-17": domain.PhaseEngagement,

	"evt-15": domain.PhaseSeekingHelp,
}

// Events returns a fresh copy of the master event list.
func Events() []domain.Event {
	return append([]domain.Event(nil), events...)
}

// EventCount is the size of the master list.
func EventCount() int {
	return len(events)
}

// FindEvent looks an event up by id in the master list.
func FindEvent(id string) (domain.Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// NewUserEvents clones the master list into a per-user overlay with no progress.
func NewUserEvents() []domain.UserEvent {
	out := make([]domain.UserEvent, len(events))
	for i, e := range events {
		out[i] = domain.UserEvent{Event: e}
	}
	return out
}

// Phase maps an event to its program phase. Unmapped ids fall into Engagement.
func Phase(eventID string) domain.EventPhase {
	if p, ok := phases[eventID]; ok {
		return p
	}
	return domain.PhaseEngagement
}

func CatalogEvents() []domain.CatalogEvent {
	out := make([]domain.CatalogEvent, len(events))
	for i, e := range events {
		out[i] = domain.CatalogEvent{Event: e, Phase: Phase(e.ID)}
	}
	return out
}
