package storygen

import (
	"fmt"
	"math/rand/v2"
)

// The six surprise-me dimensions.
var (
	roles = []string{
		"En der altid passer sig selv", "Klassens klovn", "En outsider med en hemmelighed",
		"En person i dyb sorg", "En der er vant til at få sin vilje", "En aktivist",
		"En der føler sig overvåget", "En der lige er flyttet til byen", "En der har mistet alt",
		"En perfektionist under pres", "En person der lever et dobbeltliv", "En sportsstjerne i krise",
	}
	moods = []string{
		"melankolsk", "hæsblæsende", "klaustrofobisk", "kynisk", "håbefuld",
		"mareridtsagtig", "nostalgisk", "satirisk", "rå", "poetisk", "distanceret", "intens",
	}
	themes = []string{
		"Digital hævn", "Brudt loyalitet", "Magtmisbrug", "Klimaskam", "Klasseskæl",
		"Identitetskrise", "Uindfriet kærlighed", "En farlig løgn", "Generationernes kamp",
		"Ensomhed i flokken", "Social kontrol", "Tabu", "Grådighed", "Tilgivelse",
	}
	settings = []string{
		"i en betonblok i Brøndby", "på bagsædet af en politibil", "i en fyldt biografsal",
		"på kanten af en motorvejsbro", "i en luksusvilla i Nordsjælland", "i et omklædningsrum",
		"på en Discord-server", "til en begravelse", "i en kø på McDonald's",
		"under en teltlejr i regnvejr", "på et mørkt skolebibliotek", "i en lufthavnsterminal",
	}
	twists = []string{
		"hvor mobilen er gået død", "mens alle ser på", "hvor sandheden koster alt",
		"og ingen tør gribe ind", "hvor tiden pludselig står stille", "og man opdager man er filmet",
		"hvor en fremmed ved alt om dig", "og vejret afspejler indre kaos", "mens en alarm hyler i baggrunden",
		"hvor man må svigte sin bedste ven", "og intet er, som det ser ud på overfladen",
	}
	dilemmas = []string{
		"Loyalitet vs. Sandhed", "Egoisme vs. Fællesskab", "Hævn vs. Tilgivelse",
		"Tryghed vs. Frihed", "Facaden vs. Virkeligheden", "Digitalt vs. Analogt",
		"Retfærdighed vs. Lovlighed", "Popularitet vs. Integritet",
	}
)

// TopicParts is one draw across the six dimensions.
type TopicParts struct {
	Role    string
	Mood    string
	Setting string
	Theme   string
	Twist   string
	Dilemma string
}

// String renders the parts as the topic line sent to the model.
func (p TopicParts) String() string {
	return fmt.Sprintf("Hovedperson: %s. Stemning: %s. Sted: %s. Tema: %s. Twist: %s. Dilemma: %s.",
		p.Role, p.Mood, p.Setting, p.Theme, p.Twist, p.Dilemma)
}

// TopicRandomizer draws surprise-me topics.
type TopicRandomizer struct {
	rng *rand.Rand
}

// NewTopicRandomizer uses rng, or a randomly seeded source when nil.
func NewTopicRandomizer(rng *rand.Rand) *TopicRandomizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &TopicRandomizer{rng: rng}
}

// Draw picks one value per dimension independently.
func (r *TopicRandomizer) Draw() TopicParts {
	return TopicParts{
		Role:    pick(r.rng, roles),
		Mood:    pick(r.rng, moods),
		Setting: pick(r.rng, settings),
		Theme:   pick(r.rng, themes),
		Twist:   pick(r.rng, twists),
		Dilemma: pick(r.rng, dilemmas),
	}
}

// Topic is Draw rendered as a string.
func (r *TopicRandomizer) Topic() string {
	return r.Draw().String()
}

// Combinations is the number of distinct surprise-me topics.
func Combinations() int {
	return len(roles) * len(moods) * len(settings) * len(themes) * len(twists) * len(dilemmas)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
