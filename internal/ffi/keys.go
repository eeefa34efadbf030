package ffi

// KeyEngine is the subset of the engine needed by key handles.
type KeyEngine interface {
	KeyAPI
	ByteVectorAPI
}

// PrivateKey is an owned engine private key.
type PrivateKey struct {
	handle
	api KeyEngine
}

// WrapPrivateKey takes ownership of a private key token.
func WrapPrivateKey(api KeyEngine, token Token) *PrivateKey {
	return &PrivateKey{handle: newHandle("private key", token, api.PrivateKeyDestroy), api: api}
}

// GeneratePrivateKey asks the engine for a fresh random key.
func GeneratePrivateKey(api KeyEngine) (*PrivateKey, error) {
	token, err := call("private_key_generate", api.PrivateKeyGenerate)
	if err != nil {
		return nil, err
	}

	return WrapPrivateKey(api, token), nil
}

// PrivateKeyFromHex parses a hex encoded key inside the engine.
func PrivateKeyFromHex(api KeyEngine, hex string) (*PrivateKey, error) {
	token, err := call("private_key_from_hex", func(st *Status) Token {
		return api.PrivateKeyFromHex(hex, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapPrivateKey(api, token), nil
}

// PrivateKeyFromBytes builds a key from an engine byte vector. The vector
// remains owned by the caller.
func PrivateKeyFromBytes(api KeyEngine, bytes *ByteVector) (*PrivateKey, error) {
	bt, err := bytes.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("private_key_create", func(st *Status) Token {
		return api.PrivateKeyCreate(bt, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapPrivateKey(api, token), nil
}

// Bytes returns an owned byte vector with the key material.
func (k *PrivateKey) Bytes() (*ByteVector, error) {
	t, err := k.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("private_key_get_bytes", func(st *Status) Token {
		return k.api.PrivateKeyGetBytes(t, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapByteVector(k.api, token), nil
}

// Destroy frees the key once. Safe on nil.
func (k *PrivateKey) Destroy() {
	if k != nil {
		k.handle.Destroy()
	}
}

// PublicKey is an owned engine public key.
type PublicKey struct {
	handle
	api KeyEngine
}

// WrapPublicKey takes ownership of a public key token.
func WrapPublicKey(api KeyEngine, token Token) *PublicKey {
	return &PublicKey{handle: newHandle("public key", token, api.PublicKeyDestroy), api: api}
}

// PublicKeyFromHex parses a hex encoded public key inside the engine.
func PublicKeyFromHex(api KeyEngine, hex string) (*PublicKey, error) {
	token, err := call("public_key_from_hex", func(st *Status) Token {
		return api.PublicKeyFromHex(hex, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(api, token), nil
}

// PublicKeyFromPrivateKey derives the public half of key.
func PublicKeyFromPrivateKey(api KeyEngine, key *PrivateKey) (*PublicKey, error) {
	kt, err := key.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("public_key_from_private_key", func(st *Status) Token {
		return api.PublicKeyFromPrivateKey(kt, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapPublicKey(api, token), nil
}

// Bytes returns an owned byte vector with the key material.
func (k *PublicKey) Bytes() (*ByteVector, error) {
	t, err := k.acquire()
	if err != nil {
		return nil, err
	}

	token, err := call("public_key_get_bytes", func(st *Status) Token {
		return k.api.PublicKeyGetBytes(t, st)
	})
	if err != nil {
		return nil, err
	}

	return WrapByteVector(k.api, token), nil
}

// Hex returns the uppercase hex form of the key. The intermediate byte vector
// is destroyed before returning, on success and on failure.
func (k *PublicKey) Hex() (string, error) {
	bytes, err := k.Bytes()
	if err != nil {
		return "", err
	}
	defer bytes.Destroy()

	return bytes.Hex()
}

// EmojiID returns the emoji rendering of the key.
func (k *PublicKey) EmojiID() (string, error) {
	t, err := k.acquire()
	if err != nil {
		return "", err
	}

	return call("public_key_get_emoji_id", func(st *Status) string {
		return k.api.PublicKeyGetEmojiID(t, st)
	})
}

// Borrow returns a non-owning view of the same key.
func (k *PublicKey) Borrow() *PublicKey {
	return &PublicKey{handle: k.borrow(), api: k.api}
}

// Destroy frees the key once. Safe on nil.
func (k *PublicKey) Destroy() {
	if k != nil {
		k.handle.Destroy()
	}
}
