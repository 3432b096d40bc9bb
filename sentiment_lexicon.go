package distant

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// A SentimentLexicon holds word valences plus the rule vocabulary (boosters
// and negators). It is read-only after construction.
type SentimentLexicon struct {
	words    map[string]float64
	boosters map[string]float64
	negators map[string]bool
}

// ExternalLexicon is the JSON shape accepted by LoadExternalLexicon. Entries
// merge over the base lexicon.
type ExternalLexicon struct {
	Words    map[string]float64 `json:"words,omitempty"`
	Boosters map[string]float64 `json:"boosters,omitempty"`
	Negators []string           `json:"negators,omitempty"`
}

// NewSentimentLexicon returns the built-in lexicon.
func NewSentimentLexicon() *SentimentLexicon {
	lex := &SentimentLexicon{
		words:    make(map[string]float64, len(baseValences)),
		boosters: make(map[string]float64, len(baseBoosters)),
		negators: make(map[string]bool, len(baseNegators)),
	}
	for w, v := range baseValences {
		lex.words[w] = v
	}
	for w, b := range baseBoosters {
		lex.boosters[w] = b
	}
	for _, w := range baseNegators {
		lex.negators[w] = true
	}
	return lex
}

// NewSentimentLexiconWithExternal returns the built-in lexicon merged with an
// external JSON lexicon file.
func NewSentimentLexiconWithExternal(path string) (*SentimentLexicon, error) {
	lex := NewSentimentLexicon()
	if path != "" {
		if err := lex.LoadExternalLexicon(path); err != nil {
			return nil, err
		}
	}
	return lex, nil
}

// LoadExternalLexicon merges entries from a JSON lexicon file.
func (lex *SentimentLexicon) LoadExternalLexicon(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read lexicon file: %w", err)
	}

	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return fmt.Errorf("parse lexicon file: %w", err)
	}

	for w, v := range external.Words {
		lex.words[strings.ToLower(w)] = v
	}
	for w, b := range external.Boosters {
		lex.boosters[strings.ToLower(w)] = b
	}
	for _, w := range external.Negators {
		lex.negators[strings.ToLower(w)] = true
	}
	return nil
}

// Valence returns the word's base valence and whether the word is known.
func (lex *SentimentLexicon) Valence(word string) (float64, bool) {
	v, ok := lex.words[word]
	return v, ok
}

// BoosterStrength returns the word's magnitude adjustment: positive for
// intensifiers, negative for diminishers, zero for everything else.
func (lex *SentimentLexicon) BoosterStrength(word string) float64 {
	return lex.boosters[word]
}

// IsNegator reports whether the word flips valence for the following window.
func (lex *SentimentLexicon) IsNegator(word string) bool {
	return lex.negators[word]
}

// Booster magnitudes, applied per step with distance decay.
const (
	boostIncr = 0.293
	boostDecr = -0.293
)

// baseValences is the embedded valence lexicon on a [-4, 4] scale, weighted
// toward the emotional vocabulary of long-form fiction.
var baseValences = map[string]float64{
	// Love and affection.
	"love": 3.2, "loved": 2.9, "loving": 2.9, "lover": 2.3, "lovers": 2.2,
	"lovely": 2.8, "beloved": 2.9, "adore": 3.1, "adored": 2.9,
	"adoring": 2.8, "adoration": 2.9, "affection": 2.4, "affectionate": 2.5,
	"tender": 1.9, "tenderness": 2.0, "fond": 1.9, "fondness": 2.0,
	"devoted": 2.1, "devotion": 2.3, "passion": 2.0, "passionate": 2.2,
	"darling": 2.8, "dear": 1.8, "cherish": 2.6, "cherished": 2.6,
	"sweet": 2.1, "sweetheart": 2.9, "embrace": 1.8, "kiss": 2.0,
	"kissed": 1.9, "romance": 2.2, "romantic": 2.1,
	// Joy and contentment.
	"happy": 2.7, "happiness": 2.9, "happily": 2.6, "joy": 2.8,
	"joyful": 2.9, "joyous": 2.8, "delight": 2.9, "delighted": 2.9,
	"delightful": 2.8, "pleasure": 2.4, "pleased": 2.2, "pleasant": 2.2,
	"glad": 2.0, "gladness": 2.1, "cheerful": 2.5, "cheer": 2.1,
	"merry": 2.3, "mirth": 2.2, "rejoice": 2.7, "rejoiced": 2.6,
	"bliss": 3.1, "blissful": 3.0, "content": 1.5, "contentment": 1.9,
	"smile": 1.8, "smiled": 1.7, "smiling": 1.8, "laugh": 2.0,
	"laughed": 1.9, "laughter": 2.2, "amusement": 1.9, "amused": 1.8,
	// Hope and comfort.
	"hope": 1.9, "hoped": 1.8, "hopeful": 2.1, "hoping": 1.8,
	"comfort": 1.9, "comforted": 2.0, "comfortable": 1.8, "peace": 2.0,
	"peaceful": 2.2, "serene": 2.0, "serenity": 2.1, "calm": 1.6,
	"warm": 1.6, "warmth": 1.8, "gentle": 1.8, "gently": 1.7,
	"safe": 1.6, "blessing": 2.5, "blessed": 2.6, "grateful": 2.3,
	"gratitude": 2.2, "thankful": 2.2,
	// Admiration and virtue.
	"beautiful": 2.9, "beauty": 2.6, "handsome": 2.0, "pretty": 1.9,
	"elegant": 2.1, "graceful": 2.1, "charming": 2.4, "enchanting": 2.6,
	"radiant": 2.4, "splendid": 2.8, "magnificent": 2.9, "glorious": 2.8,
	"wonderful": 2.9, "wonder": 1.6, "marvellous": 2.8, "marvelous": 2.8,
	"excellent": 2.7, "admirable": 2.4, "admire": 2.2, "admired": 2.1,
	"admiration": 2.4, "esteem": 1.9, "noble": 1.9, "generous": 2.2,
	"kind": 2.0, "kindness": 2.3, "kindly": 1.9, "gracious": 2.1,
	"amiable": 2.0, "agreeable": 1.8, "virtue": 1.8, "virtuous": 1.9,
	"worthy": 1.7, "honour": 1.9, "honor": 1.9, "honest": 1.9,
	"faithful": 2.0, "loyal": 2.1, "trust": 1.7, "trusted": 1.8,
	"true": 1.3, "friend": 1.9, "friends": 1.8, "friendship": 2.2,
	// General positive.
	"good": 1.9, "fine": 1.4, "nice": 1.8, "well": 1.1, "better": 1.9,
	"best": 3.2, "perfect": 2.7, "perfectly": 2.4, "great": 2.0,
	"fantastic": 2.6, "amazing": 2.8, "brilliant": 2.8, "superb": 2.9,
	"triumph": 2.4, "victory": 2.3, "success": 2.2, "fortunate": 2.0,
	"fortune": 1.6, "prosperity": 2.1, "rich": 1.4, "paradise": 3.2,
	"heaven": 2.3, "heavenly": 2.6, "angel": 2.2, "divine": 2.2,
	"favourite": 2.0, "favorite": 2.0, "like": 1.5, "liked": 1.6,
	"okay": 0.9, "interesting": 1.7, "eager": 1.6, "eagerly": 1.5,
	// Grief and pain.
	"pain": -2.0, "painful": -2.2, "anguish": -2.9, "anguished": -2.8,
	"sorrow": -2.4, "sorrowful": -2.5, "grief": -2.5, "grieved": -2.3,
	"grieving": -2.4, "mourn": -2.3, "mourning": -2.2, "melancholy": -1.9,
	"despair": -2.8, "despairing": -2.7, "heartbreak": -2.8,
	"heartbroken": -2.9, "torment": -2.6, "tormented": -2.6,
	"suffer": -2.1, "suffered": -2.0, "suffering": -2.3, "misery": -2.7,
	"miserable": -2.6, "wretched": -2.6, "agony": -3.0, "ache": -1.8,
	"aching": -1.9, "weep": -2.0, "wept": -1.9, "weeping": -2.0,
	"tears": -1.6, "cry": -1.6, "cried": -1.5, "crying": -1.7,
	"sad": -2.1, "sadness": -2.3, "sadly": -2.0, "unhappy": -2.2,
	"lonely": -2.1, "loneliness": -2.3, "forlorn": -2.3, "desolate": -2.3,
	"desolation": -2.4, "gloom": -2.0, "gloomy": -2.1, "dismal": -2.2,
	"bleak": -1.9, "weary": -1.5, "distress": -2.3, "distressed": -2.3,
	// Fear and dread.
	"fear": -2.2, "feared": -2.0, "fearful": -2.3, "afraid": -2.0,
	"terror": -3.0, "terrified": -2.9, "terrible": -2.7, "terribly": -2.4,
	"horror": -2.9, "horrible": -2.8, "horrid": -2.5, "dread": -2.4,
	"dreadful": -2.6, "frightened": -2.4, "frightful": -2.5,
	"alarm": -1.7, "alarmed": -1.8, "anxious": -1.8, "anxiety": -2.0,
	"nervous": -1.6, "trembling": -1.8, "danger": -2.0, "dangerous": -2.1,
	"threat": -2.1, "menace": -2.2,
	// Anger and hatred.
	"hate": -2.7, "hated": -2.6, "hateful": -2.8, "hatred": -3.2,
	"angry": -2.3, "anger": -2.2, "rage": -2.7, "fury": -2.7,
	"furious": -2.6, "wrath": -2.5, "bitter": -1.9, "bitterness": -2.1,
	"resentment": -2.2, "scorn": -2.2, "contempt": -2.4, "disgust": -2.5,
	"disgusted": -2.4, "loathe": -2.8, "loathing": -2.8, "cruel": -2.6,
	"cruelty": -2.8, "spite": -2.1, "quarrel": -1.8, "enemy": -2.2,
	"revenge": -2.3, "jealous": -1.9, "jealousy": -2.0, "envy": -1.6,
	// Loss and betrayal.
	"loss": -2.0, "lost": -1.6, "forsaken": -2.4, "abandoned": -2.2,
	"abandonment": -2.4, "rejected": -2.1, "rejection": -2.2,
	"unrequited": -2.0, "parted": -1.3, "parting": -1.4, "farewell": -1.1,
	"separated": -1.4, "separation": -1.5, "betray": -2.8,
	"betrayed": -2.7, "betrayal": -2.9, "deceit": -2.3, "deceived": -2.2,
	"deception": -2.3, "false": -1.5, "faithless": -2.3,
	// Death and ruin.
	"death": -2.8, "dead": -2.6, "die": -2.6, "died": -2.4,
	"dying": -2.5, "kill": -3.1, "killed": -3.0, "grave": -1.6,
	"tomb": -1.7, "ruin": -2.3, "ruined": -2.3, "destroy": -2.7,
	"destroyed": -2.6, "destruction": -2.7, "perish": -2.5,
	"perished": -2.4, "doom": -2.5, "doomed": -2.5, "fatal": -2.4,
	// Shame and guilt.
	"shame": -2.1, "ashamed": -2.1, "disgrace": -2.4, "disgraced": -2.4,
	"guilt": -2.0, "guilty": -2.0, "regret": -1.9, "regretted": -1.8,
	"remorse": -2.1, "sin": -1.9, "sinful": -2.1, "wicked": -2.5,
	"evil": -3.0, "vile": -2.7, "shameful": -2.3,
	// General negative.
	"bad": -2.5, "worse": -2.1, "worst": -3.1, "awful": -2.6,
	"ugly": -2.0, "poor": -1.2, "weak": -1.3, "sick": -1.8,
	"ill": -1.6, "illness": -1.9, "disease": -2.1, "hurt": -2.2,
	"wound": -2.0, "wounded": -2.1, "trouble": -1.6, "troubled": -1.8,
	"disappointing": -2.2, "disappointed": -2.1, "disappointment": -2.2,
	"fail": -2.0, "failed": -2.0, "failure": -2.3, "darkness": -1.3,
	"dark": -0.9, "cold": -0.8, "storm": -1.0, "war": -2.4,
	"fight": -1.6, "fought": -1.5, "mad": -1.9, "madness": -2.2,
	"doubt": -1.3, "doubtful": -1.4, "helpless": -2.0, "hopeless": -2.4,
	"wrong": -1.7, "worthless": -2.4, "useless": -2.0,
}

// baseBoosters holds magnitude modifiers: intensifiers increase the valence
// of the word they precede, diminishers reduce it.
var baseBoosters = map[string]float64{
	"absolutely":   boostIncr,
	"completely":   boostIncr,
	"considerably": boostIncr,
	"decidedly":    boostIncr,
	"deeply":       boostIncr,
	"entirely":     boostIncr,
	"especially":   boostIncr,
	"exceedingly":  boostIncr,
	"extremely":    boostIncr,
	"greatly":      boostIncr,
	"highly":       boostIncr,
	"incredibly":   boostIncr,
	"intensely":    boostIncr,
	"most":         boostIncr,
	"particularly": boostIncr,
	"quite":        boostIncr,
	"really":       boostIncr,
	"remarkably":   boostIncr,
	"so":           boostIncr,
	"thoroughly":   boostIncr,
	"totally":      boostIncr,
	"truly":        boostIncr,
	"utterly":      boostIncr,
	"very":         boostIncr,
	"exceptionally": boostIncr,

	"almost":       boostDecr,
	"faintly":      boostDecr,
	"less":         boostDecr,
	"marginally":   boostDecr,
	"occasionally": boostDecr,
	"partly":       boostDecr,
	"slightly":     boostDecr,
	"somewhat":     boostDecr,
	"tolerably":    boostDecr,
}

// baseNegators flip valence for a bounded window of following words. The
// bare "t" entry is the residue n't contractions leave behind once the
// tokenizer splits at the apostrophe.
var baseNegators = []string{
	"not", "no", "never", "neither", "nor", "none", "nothing",
	"nobody", "nowhere", "cannot", "without", "hardly", "scarcely",
	"barely", "seldom", "t",
}
