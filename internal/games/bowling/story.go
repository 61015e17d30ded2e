package bowling

// Note is one memo pad entry unlocked by finishing games.
type Note struct {
	Heading string
	Text    string
}

var notes = []Note{
	{
		Heading: "The Entryway BBS",
		Text: "I started The Entryway BBS the summer before my sophomore year of high " +
			"school. I thought it would be a fun project. Plus, it could be a way to distribute the " +
			"games and mods I made (it wasn't. I was notorious for never finishing them). " +
			"My favorite BBS feature was the door games, though. " +
			"Somewhere, I discovered a game called \"Bowling Solitaire\" that was an " +
			"interesting diversion from the usual role-playing and space trading, so I " +
			"installed it on The Entryway.",
	},
	{
		Heading: "A Modest Success",
		Text: "\"Bowling Solitaire\" never gained a lot of popularity compared to the other door " +
			"games, but it had a few dedicated players and I was always happy to see it " +
			"running. " +
			"As for the BBS itself, it did not take long for The " +
			"Entryway to gain a few hundred users. Much to my surprise, several people even " +
			"sent money to cover the costs of registering my shareware BBS software and " +
			"door games! It told me that there were people that enjoyed what I had created " +
			"and I found that immensely satisfying. I began to recognize the names of some of the " +
			"regulars and had conversations with a lot of them. There were even a few that " +
			"I got to know pretty well who eventually became friends outside of the BBS.",
	},
	{
		Heading: "The Exit",
		Text: "The Entryway remained active for just under four years. The waning days " +
			"of the BBS era saw a migration of people from local BBSs to the Internet (including myself). " +
			"But, even after I shut down the system, I remained friends with a handful of those regular users. " +
			"And through those friends, I met others, and then others still, expanding into a great web of friends " +
			"and acquaintances. These social connections, which would go on to influence my interests, my " +
			"relationships, and even my career, all stem from this common root. Had that 15 year old kid not decided " +
			"to tinker with BBS software as a little summer project, I cannot even imagine what direction my life might " +
			"have taken or the person I would be today.",
	},
}

// StoryPhases is the number of unlockable notes.
var StoryPhases = len(notes)

// Notes returns the notes unlocked at the given story phase.
func Notes(phase int) []Note {
	phase = max(0, min(phase, len(notes)))
	out := make([]Note, phase)
	copy(out, notes)
	return out
}

// NoteAt returns note n (1-based) if the phase has unlocked it.
func NoteAt(phase, n int) (Note, bool) {
	if n < 1 || n > len(notes) || n > phase {
		return Note{}, false
	}
	return notes[n-1], true
}

// DefaultPhaseScores are the game totals that unlock the second and third
// notes.
var DefaultPhaseScores = []int{50, 100}

// AdvanceStory returns the story phase after a finished game with the given
// total. The first finished game always unlocks a note; each later note
// needs a game total of at least thresholds[phase-1]. At most one note is
// unlocked per game.
func AdvanceStory(phase, total int, thresholds []int) (int, bool) {
	switch {
	case phase < 0:
		return 0, false
	case phase >= len(notes):
		return phase, false
	case phase == 0:
		return 1, true
	}

	i := phase - 1
	if i >= len(thresholds) {
		return phase, false
	}
	if total >= thresholds[i] {
		return phase + 1, true
	}
	return phase, false
}
