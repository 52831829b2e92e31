package domain

// BigFiveQuestions returns the full 50-item question bank, ten items per
// trait. Callers receive a fresh slice and may reorder it freely.
func BigFiveQuestions() []Question {
	out := make([]Question, len(bigFiveQuestions))
	copy(out, bigFiveQuestions)
	return out
}

// ReflectionCards returns the 15-card reflection deck. Callers receive a
// fresh slice; the cards themselves are immutable.
func ReflectionCards() []Card {
	out := make([]Card, len(reflectionCards))
	copy(out, reflectionCards)
	return out
}

var bigFiveQuestions = []Question{
	// Openness
	{ID: 1, Text: "I enjoy exploring new ideas and concepts.", Trait: TraitOpenness},
	{ID: 2, Text: "I prefer sticking to familiar routines and experiences.", Trait: TraitOpenness},
	{ID: 3, Text: "I often imagine creative solutions to problems.", Trait: TraitOpenness},
	{ID: 4, Text: "I'm not very interested in abstract or theoretical concepts.", Trait: TraitOpenness},
	{ID: 5, Text: "I enjoy experiencing different cultures and ways of life.", Trait: TraitOpenness},
	{ID: 6, Text: "If I had to spend a day in a museum, I would probably get bored quickly.", Trait: TraitOpenness},
	{ID: 7, Text: "I like trying foods I've never eaten before.", Trait: TraitOpenness},
	{ID: 8, Text: "I rarely question the way things have always been done.", Trait: TraitOpenness},
	{ID: 9, Text: "I find myself drawn to art, music, or poetry.", Trait: TraitOpenness},
	{ID: 10, Text: "I prefer practical answers over philosophical discussions.", Trait: TraitOpenness},

	// Conscientiousness
	{ID: 11, Text: "I always complete my tasks thoroughly and on time.", Trait: TraitConscientiousness},
	{ID: 12, Text: "I often leave my belongings out of place.", Trait: TraitConscientiousness},
	{ID: 13, Text: "I plan ahead and organize my schedule carefully.", Trait: TraitConscientiousness},
	{ID: 14, Text: "I sometimes act impulsively without thinking things through.", Trait: TraitConscientiousness},
	{ID: 15, Text: "I pay attention to details in my work and daily life.", Trait: TraitConscientiousness},
	{ID: 16, Text: "I often procrastinate on important tasks.", Trait: TraitConscientiousness},
	{ID: 17, Text: "I keep my commitments even when they become inconvenient.", Trait: TraitConscientiousness},
	{ID: 18, Text: "My workspace tends to get messy without me noticing.", Trait: TraitConscientiousness},
	{ID: 19, Text: "I set goals and track my progress toward them.", Trait: TraitConscientiousness},
	{ID: 20, Text: "I find strict schedules stifling and tend to ignore them.", Trait: TraitConscientiousness},

	// Extraversion
	{ID: 21, Text: "I enjoy being the center of attention at social gatherings.", Trait: TraitExtraversion},
	{ID: 22, Text: "I prefer spending quiet evenings at home rather than going out.", Trait: TraitExtraversion},
	{ID: 23, Text: "I find it easy to strike up conversations with strangers.", Trait: TraitExtraversion},
	{ID: 24, Text: "Large crowds and noisy environments make me feel uncomfortable.", Trait: TraitExtraversion},
	{ID: 25, Text: "I feel energized after spending time with a group of people.", Trait: TraitExtraversion},
	{ID: 26, Text: "I need a lot of alone time to recharge my energy.", Trait: TraitExtraversion},
	{ID: 27, Text: "I'm usually the one who suggests getting people together.", Trait: TraitExtraversion},
	{ID: 28, Text: "I tend to stay quiet in meetings unless asked directly.", Trait: TraitExtraversion},
	{ID: 29, Text: "I talk through my ideas out loud rather than thinking them over alone.", Trait: TraitExtraversion},
	{ID: 30, Text: "Working alone for long stretches suits me better than teamwork.", Trait: TraitExtraversion},

	// Agreeableness
	{ID: 31, Text: "I always try to see things from others' points of view.", Trait: TraitAgreeableness},
	{ID: 32, Text: "I can be critical of others when I disagree with them.", Trait: TraitAgreeableness},
	{ID: 33, Text: "I enjoy helping others, even if it means putting their needs before my own.", Trait: TraitAgreeableness},
	{ID: 34, Text: "In conflicts, I tend to stand my ground rather than seek compromise.", Trait: TraitAgreeableness},
	{ID: 35, Text: "I'm generally trusting of others' intentions.", Trait: TraitAgreeableness},
	{ID: 36, Text: "I can be skeptical of people's motives.", Trait: TraitAgreeableness},
	{ID: 37, Text: "I go out of my way to make newcomers feel welcome.", Trait: TraitAgreeableness},
	{ID: 38, Text: "I find it hard to forgive people who have wronged me.", Trait: TraitAgreeableness},
	{ID: 39, Text: "I soften criticism so it doesn't hurt the other person.", Trait: TraitAgreeableness},
	{ID: 40, Text: "Winning an argument matters more to me than keeping the peace.", Trait: TraitAgreeableness},

	// Neuroticism
	{ID: 41, Text: "I often worry about things that might go wrong.", Trait: TraitNeuroticism},
	{ID: 42, Text: "I rarely feel anxious or overwhelmed by my emotions.", Trait: TraitNeuroticism},
	{ID: 43, Text: "Small setbacks can sometimes feel very frustrating to me.", Trait: TraitNeuroticism},
	{ID: 44, Text: "I generally stay calm under pressure.", Trait: TraitNeuroticism},
	{ID: 45, Text: "I often experience mood swings throughout the day.", Trait: TraitNeuroticism},
	{ID: 46, Text: "I find it easy to relax and unwind after a stressful day.", Trait: TraitNeuroticism},
	{ID: 47, Text: "Criticism stays with me long after it is given.", Trait: TraitNeuroticism},
	{ID: 48, Text: "I bounce back quickly from disappointments.", Trait: TraitNeuroticism},
	{ID: 49, Text: "I replay awkward moments in my head for days.", Trait: TraitNeuroticism},
	{ID: 50, Text: "Uncertainty about the future doesn't bother me much.", Trait: TraitNeuroticism},
}

var reflectionCards = []Card{
	{ID: 1, Image: "/cards/river.webp", Alt: "A river bending through a valley", Snippet: "The river does not hurry.", FullQuote: "The river does not hurry, yet everything is accomplished in its passing.", Tags: []string{"patience", "flow"}, Theme: "stillness"},
	{ID: 2, Image: "/cards/lantern.webp", Alt: "A paper lantern in the dark", Snippet: "One small light is enough.", FullQuote: "One small light is enough to take the next step, though the road stays dark.", Tags: []string{"hope", "courage"}, Theme: "guidance"},
	{ID: 3, Image: "/cards/mountain.webp", Alt: "A mountain above the clouds", Snippet: "The summit keeps its own time.", FullQuote: "The summit keeps its own time; the climber only chooses to keep walking.", Tags: []string{"persistence", "ambition"}, Theme: "endurance"},
	{ID: 4, Image: "/cards/tide.webp", Alt: "Waves withdrawing from a shore", Snippet: "What recedes will return.", FullQuote: "What recedes will return; the tide has never once forgotten the shore.", Tags: []string{"loss", "renewal"}, Theme: "cycles"},
	{ID: 5, Image: "/cards/seed.webp", Alt: "A seedling breaking through soil", Snippet: "Growth begins underground.", FullQuote: "Growth begins underground, long before anyone calls it growth.", Tags: []string{"beginnings", "patience"}, Theme: "becoming"},
	{ID: 6, Image: "/cards/mirror.webp", Alt: "A still lake reflecting trees", Snippet: "Still water shows the truest face.", FullQuote: "Still water shows the truest face; be quiet long enough to see your own.", Tags: []string{"reflection", "honesty"}, Theme: "stillness"},
	{ID: 7, Image: "/cards/crossroads.webp", Alt: "Two paths diverging in a field", Snippet: "Every road declines the others.", FullQuote: "Every road declines the others; choosing is how a life takes shape.", Tags: []string{"choice", "identity"}, Theme: "direction"},
	{ID: 8, Image: "/cards/ember.webp", Alt: "Embers glowing in a fire pit", Snippet: "Tend what still glows.", FullQuote: "Tend what still glows instead of mourning the flame it used to be.", Tags: []string{"recovery", "care"}, Theme: "renewal"},
	{ID: 9, Image: "/cards/bridge.webp", Alt: "A rope bridge across a gorge", Snippet: "Trust is built mid-crossing.", FullQuote: "Trust is built mid-crossing, never from the safety of either side.", Tags: []string{"trust", "courage"}, Theme: "connection"},
	{ID: 10, Image: "/cards/moon.webp", Alt: "A crescent moon over water", Snippet: "Even the moon is mostly shadow.", FullQuote: "Even the moon is mostly shadow, and still we navigate by it.", Tags: []string{"acceptance", "imperfection"}, Theme: "cycles"},
	{ID: 11, Image: "/cards/harvest.webp", Alt: "A field of wheat at dusk", Snippet: "Nothing ripens on demand.", FullQuote: "Nothing ripens on demand; the harvest answers to seasons, not to wishes.", Tags: []string{"patience", "timing"}, Theme: "endurance"},
	{ID: 12, Image: "/cards/compass.webp", Alt: "An old brass compass", Snippet: "North is a decision.", FullQuote: "North is a decision you renew each morning, not a place you arrive.", Tags: []string{"values", "direction"}, Theme: "direction"},
	{ID: 13, Image: "/cards/nest.webp", Alt: "An empty nest on a bare branch", Snippet: "Leaving is part of the design.", FullQuote: "Leaving is part of the design; the nest was always built for departure.", Tags: []string{"change", "letting go"}, Theme: "becoming"},
	{ID: 14, Image: "/cards/storm.webp", Alt: "Storm clouds over open plains", Snippet: "Weather is not the climate.", FullQuote: "Weather is not the climate; a hard day is not the shape of a life.", Tags: []string{"perspective", "resilience"}, Theme: "perspective"},
	{ID: 15, Image: "/cards/door.webp", Alt: "A door ajar with light behind it", Snippet: "Ajar is an invitation.", FullQuote: "Ajar is an invitation; most doors only look closed from far away.", Tags: []string{"opportunity", "courage"}, Theme: "guidance"},
}
