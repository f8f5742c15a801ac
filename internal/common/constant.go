package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the access
// token on inbound requests.
const AccessTokenHeaderName = "access_token"

// RoleInstructor is the role allowed to publish documents. At most one user
// may hold it.
const RoleInstructor = "INSTRUCTOR"

// RoleStudent is the default role assigned at registration.
const RoleStudent = "STUDENT"
