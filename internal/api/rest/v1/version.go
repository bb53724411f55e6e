package v1

// BasePath is the prefix every route group is mounted under.
const BasePath = "/api"
