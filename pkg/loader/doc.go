// Package loader applies exchange documents to the repository.
//
// An exchange document is the YAML form of what an asset manager wants the
// repository to hold for it:
//
//	assetManager:
//	  qualifiedName: crm
//	  displayName: Customer Relationship Manager
//	glossaries:
//	  - externalIdentifier: gl-sales
//	    properties:
//	      qualifiedName: Glossary::Sales
//	    categories:
//	      - externalIdentifier: cat-customers
//	        properties:
//	          qualifiedName: Category::Customers
//	    terms:
//	      - externalIdentifier: term-customer
//	        status: DRAFT
//	        categories: [cat-customers]
//	        properties:
//	          qualifiedName: Term::Customer
//	dataAssets:
//	  - externalIdentifier: tbl-customers
//	    published: true
//	    properties:
//	      qualifiedName: crm.customers
//
// Every element is correlated by its external identifier. Elements the
// asset manager already registered are updated, the rest are created, so a
// document can be applied any number of times.
package loader
