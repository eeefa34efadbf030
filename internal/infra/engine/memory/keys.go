package memory

import (
	"encoding/hex"

	"github.com/gabapcia/walletcore/internal/ffi"
)

const keyLength = 32

var emojiAlphabet = []string{
	"🐢", "🦊", "🐙", "🦉", "🐝", "🌵", "🍄", "🌙",
	"⭐", "🔥", "🌊", "🍀", "🎲", "🎸", "🚀", "💎",
}

func emojiID(key []byte) string {
	out := ""
	for _, b := range key[:min(len(key), 12)] {
		out += emojiAlphabet[b>>4] + emojiAlphabet[b&0x0f]
	}
	return out
}

func publicFromPrivate(priv []byte) []byte {
	return digest([]byte("pub"), priv)
}

func (e *Engine) PrivateKeyGenerate(st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PrivateKeyGenerate", st) {
		return ffi.Null
	}
	return e.alloc(kindPrivateKey, randomBytes(keyLength))
}

func (e *Engine) PrivateKeyFromHex(s string, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PrivateKeyFromHex", st) {
		return ffi.Null
	}

	b, err := hex.DecodeString(s)
	if err != nil || len(b) != keyLength {
		st.Code = CodeInvalidArgument
		return ffi.Null
	}
	return e.alloc(kindPrivateKey, b)
}

func (e *Engine) PrivateKeyCreate(bytes ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PrivateKeyCreate", st) {
		return ffi.Null
	}

	v, ok := e.lookup(bytes, kindByteVector, st)
	if !ok {
		return ffi.Null
	}

	data := v.([]byte)
	if len(data) != keyLength {
		st.Code = CodeInvalidArgument
		return ffi.Null
	}
	return e.alloc(kindPrivateKey, clone(data))
}

func (e *Engine) PrivateKeyGetBytes(key ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PrivateKeyGetBytes", st) {
		return ffi.Null
	}

	v, ok := e.lookup(key, kindPrivateKey, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindByteVector, clone(v.([]byte)))
}

func (e *Engine) PrivateKeyDestroy(key ffi.Token) {
	e.free("PrivateKeyDestroy", key, kindPrivateKey)
}

func (e *Engine) PublicKeyFromHex(s string, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PublicKeyFromHex", st) {
		return ffi.Null
	}

	b, err := hex.DecodeString(s)
	if err != nil || len(b) != keyLength {
		st.Code = CodeInvalidArgument
		return ffi.Null
	}
	return e.alloc(kindPublicKey, b)
}

func (e *Engine) PublicKeyFromPrivateKey(key ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PublicKeyFromPrivateKey", st) {
		return ffi.Null
	}

	v, ok := e.lookup(key, kindPrivateKey, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindPublicKey, publicFromPrivate(v.([]byte)))
}

func (e *Engine) PublicKeyGetBytes(key ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PublicKeyGetBytes", st) {
		return ffi.Null
	}

	v, ok := e.lookup(key, kindPublicKey, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindByteVector, clone(v.([]byte)))
}

func (e *Engine) PublicKeyGetEmojiID(key ffi.Token, st *ffi.Status) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("PublicKeyGetEmojiID", st) {
		return ""
	}

	v, ok := e.lookup(key, kindPublicKey, st)
	if !ok {
		return ""
	}
	return emojiID(v.([]byte))
}

func (e *Engine) PublicKeyDestroy(key ffi.Token) {
	e.free("PublicKeyDestroy", key, kindPublicKey)
}

func (e *Engine) ByteVectorCreate(data []byte, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ByteVectorCreate", st) {
		return ffi.Null
	}
	return e.alloc(kindByteVector, clone(data))
}

func (e *Engine) ByteVectorGetLength(bv ffi.Token, st *ffi.Status) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ByteVectorGetLength", st) {
		return 0
	}

	v, ok := e.lookup(bv, kindByteVector, st)
	if !ok {
		return 0
	}
	return uint32(len(v.([]byte)))
}

func (e *Engine) ByteVectorGetAt(bv ffi.Token, index uint32, st *ffi.Status) byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ByteVectorGetAt", st) {
		return 0
	}

	v, ok := e.lookup(bv, kindByteVector, st)
	if !ok {
		return 0
	}

	data := v.([]byte)
	if int(index) >= len(data) {
		st.Code = CodeIndexOutOfBounds
		return 0
	}
	return data[index]
}

func (e *Engine) ByteVectorDestroy(bv ffi.Token) {
	e.free("ByteVectorDestroy", bv, kindByteVector)
}

func (e *Engine) CommsConfigCreate(publicAddress string, transport ffi.TransportType, databaseName, datastorePath string, discoveryTimeoutSec uint64, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("CommsConfigCreate", st) {
		return ffi.Null
	}

	if databaseName == "" {
		st.Code = CodeInvalidArgument
		return ffi.Null
	}

	return e.alloc(kindCommsConfig, &commsConfig{params: ffi.CommsConfigParams{
		PublicAddress:       publicAddress,
		Transport:           transport,
		DatabaseName:        databaseName,
		DatastorePath:       datastorePath,
		DiscoveryTimeoutSec: discoveryTimeoutSec,
	}})
}

func (e *Engine) CommsConfigSetPrivateKey(cfg, key ffi.Token, st *ffi.Status) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("CommsConfigSetPrivateKey", st) {
		return
	}

	c, ok := e.lookup(cfg, kindCommsConfig, st)
	if !ok {
		return
	}

	k, ok := e.lookup(key, kindPrivateKey, st)
	if !ok {
		return
	}
	c.(*commsConfig).privateKey = clone(k.([]byte))
}

func (e *Engine) CommsConfigDestroy(cfg ffi.Token) {
	e.free("CommsConfigDestroy", cfg, kindCommsConfig)
}

func (e *Engine) ContactCreate(alias string, publicKey ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ContactCreate", st) {
		return ffi.Null
	}

	pk, ok := e.lookup(publicKey, kindPublicKey, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindContact, contact{alias: alias, publicKey: clone(pk.([]byte))})
}

func (e *Engine) ContactGetAlias(c ffi.Token, st *ffi.Status) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ContactGetAlias", st) {
		return ""
	}

	v, ok := e.lookup(c, kindContact, st)
	if !ok {
		return ""
	}
	return v.(contact).alias
}

func (e *Engine) ContactGetPublicKey(c ffi.Token, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ContactGetPublicKey", st) {
		return ffi.Null
	}

	v, ok := e.lookup(c, kindContact, st)
	if !ok {
		return ffi.Null
	}
	return e.alloc(kindPublicKey, clone(v.(contact).publicKey))
}

func (e *Engine) ContactDestroy(c ffi.Token) {
	e.free("ContactDestroy", c, kindContact)
}

func (e *Engine) ContactsGetLength(cs ffi.Token, st *ffi.Status) uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ContactsGetLength", st) {
		return 0
	}

	v, ok := e.lookup(cs, kindContacts, st)
	if !ok {
		return 0
	}
	return uint32(len(v.([]contact)))
}

func (e *Engine) ContactsGetAt(cs ffi.Token, index uint32, st *ffi.Status) ffi.Token {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enter("ContactsGetAt", st) {
		return ffi.Null
	}

	v, ok := e.lookup(cs, kindContacts, st)
	if !ok {
		return ffi.Null
	}

	items := v.([]contact)
	if int(index) >= len(items) {
		st.Code = CodeIndexOutOfBounds
		return ffi.Null
	}
	return e.alloc(kindContact, items[index])
}

func (e *Engine) ContactsDestroy(cs ffi.Token) {
	e.free("ContactsDestroy", cs, kindContacts)
}
