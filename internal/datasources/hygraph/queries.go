package hygraph

const createReviewMutation = `
mutation CreateReview($name: String!, $rating: Int!, $description: String!) {
  createReview(data: {name: $name, rating: $rating, description: $description}) {
    id
    name
    rating
    description
  }
}`

const publishReviewMutation = `
mutation PublishReview($id: ID!) {
  publishReview(where: {id: $id}, to: PUBLISHED) {
    id
  }
}`

const listReviewsQuery = `
query GetReviews {
  reviews {
    id
    name
    description
    createdAt
    rating
    updatedAt
  }
}`

const deleteReviewMutation = `
mutation DeleteReview($id: ID!) {
  deleteReview(where: {id: $id}) {
    id
  }
}`
