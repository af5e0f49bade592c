package lsp

import (
	"slices"
	"sync"

	"github.com/yaklabco/humorlint/pkg/source"
)

// Document is an immutable snapshot of an open text document.
type Document struct {
	// URI is the document URI exactly as the client last sent it.
	URI string

	// Version is the client-reported version.
	Version int

	// Snapshot holds the full text and its line index.
	Snapshot *source.Snapshot
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.Snapshot.Content
}

// DocumentStore holds the open documents keyed by canonical URI, so
// differently escaped spellings of one file share an entry.
//
// Documents are replaced wholesale: Put stores a new Document and Get hands
// out the current one, which callers may read without further locking.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Put stores text as the current content of uri and returns the new Document.
func (s *DocumentStore) Put(uri string, version int, text string) *Document {
	doc := &Document{
		URI:      uri,
		Version:  version,
		Snapshot: source.NewSnapshot(uri, text),
	}

	s.mu.Lock()
	s.docs[canonicalURI(uri)] = doc
	s.mu.Unlock()

	return doc
}

// Update applies fn to the current text of uri and stores the result under
// a single lock, so concurrent updates to the same document are not lost.
func (s *DocumentStore) Update(uri string, version int, fn func(text string) string) *Document {
	key := canonicalURI(uri)

	s.mu.Lock()
	defer s.mu.Unlock()

	var text string
	if current, ok := s.docs[key]; ok {
		text = current.Text()
	}

	doc := &Document{
		URI:      uri,
		Version:  version,
		Snapshot: source.NewSnapshot(uri, fn(text)),
	}
	s.docs[key] = doc

	return doc
}

// Get returns the current Document for uri.
func (s *DocumentStore) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[canonicalURI(uri)]
	return doc, ok
}

// Delete removes uri and reports whether it was open.
func (s *DocumentStore) Delete(uri string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := canonicalURI(uri)
	_, ok := s.docs[key]
	delete(s.docs, key)
	return ok
}

// URIs returns the client URIs of the open documents in sorted order.
func (s *DocumentStore) URIs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uris := make([]string, 0, len(s.docs))
	for _, doc := range s.docs {
		uris = append(uris, doc.URI)
	}
	slices.Sort(uris)
	return uris
}

// Len returns the number of open documents.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
