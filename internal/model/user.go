package model

// User represents a registered account as stored under the `users`
// key of the durable store. The password is a plaintext placeholder
// credential; hashing and token issuance are out of scope for this
// system. Mobile and email together act as the identity keys: no two
// records may share either one.
//
// Fields:
//  FullName – display name, also the value stamped onto listings
//             published by this account.
//  Mobile   – primary lookup key for authentication.
//  Email    – secondary identity key, checked at registration.
//  Password – plaintext placeholder credential.
type User struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Mobile   string `json:"mobile" yaml:"mobile"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}
