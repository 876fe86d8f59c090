package fabric

// Images holds the image repositories of each node type, without tag.
type Images struct {
	CA      string
	Orderer string
	Peer    string
}

// DefaultImages are the upstream Hyperledger images.
var DefaultImages = Images{
	CA:      "hyperledger/fabric-ca",
	Orderer: "hyperledger/fabric-orderer",
	Peer:    "hyperledger/fabric-peer",
}

// StateDB selects the peer ledger state database.
type StateDB struct {
	// Backend is LevelDB or CouchDB.
	Backend  string
	Address  string
	Username string
	Password string
}

// DefaultStateDB keeps the ledger in the embedded LevelDB. The CouchDB
// address is still exported so switching the backend is a single change.
var DefaultStateDB = StateDB{
	Backend: "LevelDB",
	Address: "couchdb:5984",
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithImages overrides the image repositories. Empty fields keep the
// default repository.
func WithImages(images Images) Option {
	return func(s *Synthesizer) {
		if images.CA != "" {
			s.images.CA = images.CA
		}
		if images.Orderer != "" {
			s.images.Orderer = images.Orderer
		}
		if images.Peer != "" {
			s.images.Peer = images.Peer
		}
	}
}

// WithLayout selects the volume layout revision.
func WithLayout(layout Layout) Option {
	return func(s *Synthesizer) {
		s.layout = layout
	}
}

// WithStateDB configures the peer state database.
func WithStateDB(db StateDB) Option {
	return func(s *Synthesizer) {
		if db.Backend == "" {
			db.Backend = DefaultStateDB.Backend
		}
		s.stateDB = db
	}
}
