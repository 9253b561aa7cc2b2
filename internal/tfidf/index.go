// Package tfidf builds a fixed-vocabulary TF-IDF term-weight index over a text corpus.
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Entry is a single non-zero component of a sparse vector.
type Entry struct {
	Term   int
	Weight float64
}

// Vector is a sparse weight vector with entries sorted by term index.
type Vector []Entry

// Index holds the frozen vocabulary, the IDF weights and the corpus matrix.
// It is immutable after Fit and safe for concurrent readers.
type Index struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
	rows       []Vector
}

// Tokenize lower-cases text and splits it into vocabulary tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Fit learns the vocabulary and IDF weights from docs and vectorizes every document.
// Row i of the resulting matrix corresponds to docs[i].
func Fit(docs []string) *Index {
	tokenized := make([][]string, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	idx := &Index{
		vocabulary: make(map[string]int, len(terms)),
		terms:      terms,
		idf:        make([]float64, len(terms)),
		rows:       make([]Vector, len(docs)),
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1
	n := float64(len(docs))
	for i, term := range terms {
		idx.vocabulary[term] = i
		idx.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	for i, tokens := range tokenized {
		idx.rows[i] = idx.weigh(tokens)
	}

	return idx
}

// Transform projects text into the index's vector space. Tokens outside the
// vocabulary are ignored, so the result may be the zero vector.
func (idx *Index) Transform(text string) Vector {
	return idx.weigh(Tokenize(text))
}

// weigh turns a token list into an L2-normalised TF-IDF vector.
func (idx *Index) weigh(tokens []string) Vector {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		if term, ok := idx.vocabulary[tok]; ok {
			counts[term]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}

	vec := make(Vector, 0, len(counts))
	for term, tf := range counts {
		vec = append(vec, Entry{Term: term, Weight: tf * idx.idf[term]})
	}
	sort.Slice(vec, func(i, j int) bool {
		return vec[i].Term < vec[j].Term
	})

	norm := vec.Norm()
	for i := range vec {
		vec[i].Weight /= norm
	}
	return vec
}

// Row returns the weight vector of document i.
func (idx *Index) Row(i int) Vector {
	return idx.rows[i]
}

// Len returns the number of documents in the matrix.
func (idx *Index) Len() int {
	return len(idx.rows)
}

// VocabularySize returns the number of distinct terms learned by Fit.
func (idx *Index) VocabularySize() int {
	return len(idx.terms)
}

// Term returns the vocabulary term at column i.
func (idx *Index) Term(i int) string {
	return idx.terms[i]
}

// IDF returns the inverse document frequency of term, and false if the term
// is not part of the vocabulary.
func (idx *Index) IDF(term string) (float64, bool) {
	i, ok := idx.vocabulary[term]
	if !ok {
		return 0, false
	}
	return idx.idf[i], true
}

// Similarities returns the cosine similarity of v against every row, in row order.
func (idx *Index) Similarities(v Vector) []float64 {
	scores := make([]float64, len(idx.rows))
	for i, row := range idx.rows {
		scores[i] = Cosine(v, row)
	}
	return scores
}
