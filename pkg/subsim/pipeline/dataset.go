package pipeline

// Record is one raw input row, decoded from a line of JSONL. Field access
// and schema validation belong to the extraction stage, not the loader.
type Record map[string]any

// Comment is a canonical (group key, text) pair produced by extraction.
type Comment struct {
	Subreddit string
	Body      string
}

// Document is the aggregated text of one subreddit and everything the
// pipeline derives from it. Fields are filled in stage by stage.
type Document struct {
	Subreddit string
	Body      string

	// Tokens is the cleaned, stopword-filtered token sequence.
	Tokens []string

	// TF maps vocabulary index to raw term count (sparse).
	TF map[int]float64

	// TFIDF is dense over the vocabulary; zero entries are explicit.
	TFIDF []float64

	TopWords   []WordScore
	TopSimilar []GroupScore
}

// WordScore is one (word, tf-idf) pair of a document's top-words result.
type WordScore struct {
	Word  string
	Score float64
}

// GroupScore is one (subreddit, cosine similarity) pair of a document's
// top-similar result.
type GroupScore struct {
	Subreddit string
	Score     float64
}

// Vocabulary is the frozen, ordered term set shared by the vectorizing and
// labeling stages. Index assignment never changes after construction.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary builds a vocabulary from an ordered term slice.
func NewVocabulary(terms []string) *Vocabulary {
	idx := make(map[string]int, len(terms))
	for i, t := range terms {
		idx[t] = i
	}
	return &Vocabulary{terms: terms, index: idx}
}

// Index returns the index of a term, if present.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at the given index.
func (v *Vocabulary) Term(i int) string { return v.terms[i] }

// Size returns the number of terms.
func (v *Vocabulary) Size() int { return len(v.terms) }

// Terms returns a copy of the ordered term slice.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Dataset is the table flowing through the pipeline. Early stages work on
// Raw and Comments; once aggregation runs, Docs carries everything.
type Dataset struct {
	Raw      []Record
	Comments []Comment
	Docs     []Document

	// Vocab is set once by the vocabulary stage and read-only afterward.
	Vocab *Vocabulary

	// Sim[i][j] is the cosine similarity between Docs[i] and Docs[j].
	Sim [][]float64

	// DroppedGroups counts subreddits removed by the length filter.
	DroppedGroups int
}
