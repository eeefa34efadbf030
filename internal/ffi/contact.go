package ffi

// ContactEngine is the subset of the engine needed by contact handles.
type ContactEngine interface {
	ContactAPI
	KeyEngine
}

// Contact is an owned engine contact.
type Contact struct {
	handle
	api ContactEngine
}

// WrapContact takes ownership of a contact token.
func WrapContact(api ContactEngine, token Token) *Contact {
	return &Contact{handle: newHandle("contact", token, api.ContactDestroy), api: api}
}

// NewContact creates a contact for alias and publicKey. publicKey stays owned
// by the caller.
func NewContact(api ContactEngine, alias string, publicKey *PublicKey) (*Contact, error) {
	pt, err := publicKey.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("contact_create", func(st *Status) Token {
		return api.ContactCreate(alias, pt, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapContact(api, token), nil
}

// Alias returns the contact alias.
func (c *Contact) Alias() (string, error) {
	t, err := c.acquire()
	if err != nil {
		return "", err
	}

	return call("contact_get_alias", func(st *Status) string {
		return c.api.ContactGetAlias(t, st)
	})
}

// PublicKey returns an owned copy of the contact key.
func (c *Contact) PublicKey() (*PublicKey, error) {
	t, err := c.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("contact_get_public_key", func(st *Status) Token {
		return c.api.ContactGetPublicKey(t, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(c.api, token), nil
}

// Destroy frees the contact once. Safe on nil.
func (c *Contact) Destroy() {
	if c != nil {
		c.handle.Destroy()
	}
}

// Contacts is an owned contact collection.
type Contacts struct {
	handle
	api ContactEngine
}

// WrapContacts takes ownership of a contact collection token.
func WrapContacts(api ContactEngine, token Token) *Contacts {
	return &Contacts{handle: newHandle("contacts", token, api.ContactsDestroy), api: api}
}

// Len returns the number of contacts.
func (c *Contacts) Len() (uint32, error) {
	t, err := c.acquire()
	if err != nil {
		return 0, err
	}

	return call("contacts_get_length", func(st *Status) uint32 {
		return c.api.ContactsGetLength(t, st)
	})
}

// At returns an owned copy of the contact at index. Destroying it does not
// affect the collection, and destroying the collection does not affect it.
func (c *Contacts) At(index uint32) (*Contact, error) {
	t, err := c.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("contacts_get_at", func(st *Status) Token {
		return c.api.ContactsGetAt(t, index, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapContact(c.api, token), nil
}

// Destroy frees the collection once. Safe on nil.
func (c *Contacts) Destroy() {
	if c != nil {
		c.handle.Destroy()
	}
}
