package storygen

import (
	"fmt"
	"strings"
)

// DefaultTopic replaces a blank topic.
const DefaultTopic = "En overraskende rejse eller et mysterium"

const promptTemplate = `Skriv en spændende historie på dansk til en 15-årig pige.
Historien skal være mellem 500 og 700 ord for at sikre tid til fordybelse og en ordentlig afslutning.

Emne/Genre: %s.

Krav:
1. Brug fiktive personer, men inkluder mindst én interessant faktuel ting fra den virkelige verden (historie, videnskab, geografi osv.).
2. Sproget skal være engagerende, varieret og passe til en teenager. Undgå klichéer. Vær kreativ og uforudsigelig.
3. Historien skal have en tydelig start, midte og slutning.
4. Historien skal lede op til et matematisk problem, som læseren skal løse til sidst.
5. Det matematiske problem skal være på 9. klasses niveau (f.eks. procent, geometri, ligninger, sandsynlighed) og være integreret i handlingen.
6. Inkluder også et læseforståelsesspørgsmål (multiple choice), der tester om læseren har lagt mærke til en specifik detalje i teksten (ikke matematik, men handling/beskrivelse).

Returner svaret som JSON.`

// BuildPrompt renders the generation prompt for topic.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, ResolveTopic(topic))
}

// ResolveTopic trims topic and substitutes DefaultTopic when blank.
func ResolveTopic(topic string) string {
	if t := strings.TrimSpace(topic); t != "" {
		return t
	}
	return DefaultTopic
}
