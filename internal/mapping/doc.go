// Package mapping provides YAML schema files: parsing, validation and
// building of serializer schemas.
//
// A schema file declares schemas by name. Schemas may extend each other and
// nest each other in any file order; Build declares them in dependency order
// and reports reference cycles.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	schemas:
//	  - name: Address
//	    fields:
//	      - name: street
//	        type: string
//	        validators: [required]
//	      - name: zip
//	        type: string
//	        validators:
//	          - {max_length: 10}
//	  - name: User
//	    fields:
//	      - name: id
//	        type: uuid
//	      - name: email
//	        type: email
//	        blacklist: [example.com]
//	      - name: age
//	        type: integer
//	        validators:
//	          - type: min_value
//	            value: 0
//	            messages: {invalid: "age cannot be negative"}
//	      - name: status
//	        type: choice
//	        choices: [[enabled, Enabled], [disabled, Disabled]]
//	      - name: address
//	        schema: Address
//	        source: Profile.Address
//	        allow_blank_source: true
//	  - name: PublicUser
//	    extends: User
//	    only: [email, status]
//
// # Field Types
//
// Leaf types come from a Registry; DefaultRegistry knows string, char, raw,
// url, email, number, integer, float, decimal, date, datetime, uuid, dict,
// boolean, choice and enum. A field with a schema reference is nested.
// Method fields need a Go function and cannot be declared in a file.
//
// # Validators
//
// Validators are written as a name ("required"), a single pair
// ({max_length: 20}) or in full with type, value and messages.
//
// # Diagnostics
//
// Validate returns every problem found, each with a stable code such as
// "unknown_field_type" or "unknown_only_name", and a suggestion when a
// close name exists.
package mapping
