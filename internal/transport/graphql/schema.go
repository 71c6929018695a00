package graphql

// Schema is the full operation surface of the auth core. Post and voting
// types live in their own resolver once they land; register/login mirror
// the board's original UserResponse shape, with field errors in-band.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		me: User
	}

	type Mutation {
		register(options: UsernamePasswordInput!): UserResponse!
		login(options: UsernamePasswordInput!): UserResponse!
		logout: Boolean!
	}

	input UsernamePasswordInput {
		username: String!
		password: String!
	}

	type User {
		id: ID!
		username: String!
		createdAt: String!
		updatedAt: String!
	}

	type FieldError {
		field: String!
		message: String!
	}

	type UserResponse {
		errors: [FieldError!]
		user: User
	}
`
