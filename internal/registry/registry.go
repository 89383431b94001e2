package registry

// RegistryConfig represents the config structure for the Registry.
type RegistryConfig struct {
	Addresses []string
	QueryIDs  []string `envconfig:"QUERY_IDS"`
}

// New instantiates a new *Registry based on the cfg.
func New(cfg *RegistryConfig) *Registry {
	r := &Registry{
		addresses: make(map[string]struct{}, len(cfg.Addresses)),
		queryIDs:  make(map[string]struct{}, len(cfg.QueryIDs)),
	}
	for _, addr := range cfg.Addresses {
		r.addresses[addr] = struct{}{}
	}
	for _, id := range cfg.QueryIDs {
		r.queryIDs[id] = struct{}{}
	}
	return r
}

// Registry is the relayer's watch list registry. It contains a list of sender addresses and query
// ids, and the relayer only relays cross-chain queries matching them. An empty list matches
// everything.
type Registry struct {
	addresses map[string]struct{}
	queryIDs  map[string]struct{}
}

// IsAddressesEmpty returns true if the registry addresses list is empty.
func (r *Registry) IsAddressesEmpty() bool {
	return len(r.addresses) == 0
}

// IsQueryIDsEmpty returns true if the registry query ids list is empty.
func (r *Registry) IsQueryIDsEmpty() bool {
	return len(r.queryIDs) == 0
}

// ContainsAddress returns true if the addr is in the registry.
func (r *Registry) ContainsAddress(addr string) bool {
	_, ex := r.addresses[addr]
	return ex
}

// ContainsQueryID returns true if the query id is in the registry.
func (r *Registry) ContainsQueryID(id string) bool {
	_, ex := r.queryIDs[id]
	return ex
}

// IsWatched reports whether a query with the given sender and id should be relayed. An empty
// sender is only checked against the query ids.
func (r *Registry) IsWatched(sender, queryID string) bool {
	if !r.IsQueryIDsEmpty() && !r.ContainsQueryID(queryID) {
		return false
	}
	if sender == "" {
		return true
	}
	return r.IsAddressesEmpty() || r.ContainsAddress(sender)
}

func (r *Registry) GetAddresses() []string {
	var out []string
	for addr := range r.addresses {
		out = append(out, addr)
	}

	return out
}
